// Package ui prints progress messages for the command line tools.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color functions for terminal output
var (
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
)

// Configure turns colours off when requested or when stdout is not a terminal
func Configure(noColor bool) {
	color.NoColor = noColor || !term.IsTerminal(int(os.Stdout.Fd()))
}

// Printer receives the user facing progress messages of a run
type Printer interface {
	Info(msg string)
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// Console prints coloured messages, one per line
type Console struct {
	out io.Writer
	mu  sync.Mutex
}

// NewConsole creates a Console writing to out, or stdout if out is nil
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

func (c *Console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}

// Info prints a neutral progress message
func (c *Console) Info(msg string) { c.println(msg) }

// Success prints a message in green
func (c *Console) Success(msg string) { c.println(Green(msg)) }

// Warning prints a message in yellow
func (c *Console) Warning(msg string) { c.println(Yellow(msg)) }

// Error prints a message in red
func (c *Console) Error(msg string) { c.println(Red(msg)) }

var stdout = NewConsole(os.Stdout)

// PrintError prints an error message in red
func PrintError(msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = msg + ": " + fmt.Sprintf("%v", args[0])
	}
	stdout.Error(msg)
}

// PrintSuccess prints a success message in green
func PrintSuccess(msg string) {
	stdout.Success(msg)
}

// PrintInfo prints a labelled value
func PrintInfo(label string, value string) {
	stdout.Info(fmt.Sprintf("%s: %s", Cyan(label), Yellow(value)))
}

// PrintWarning prints a warning message in yellow
func PrintWarning(msg string) {
	stdout.Warning(msg)
}
