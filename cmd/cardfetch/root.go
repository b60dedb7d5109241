package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"cardfetch/pkg/config"
	"cardfetch/pkg/logger"
	"cardfetch/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	logLevel   string
	noColor    bool
)

// rootCmd runs the fetcher when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "cardfetch",
	Short: "Download Monopoly Deal card images and build flipped wildcards",
	Long: `cardfetch mirrors the card images of a Monopoly Deal listing page into a
local directory. Images already on disk are skipped, so it is safe to run
again after an interrupted download.

The flip command then writes a 180-degree rotated copy of each wildcard image.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.Configure(noColor)
	},
	Args: cobra.NoArgs,
	Run:  runFetch,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is .cardfetch.yaml or ~/.config/cardfetch/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error, disabled)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	addFetchFlags(rootCmd)

	rootCmd.SetVersionTemplate(`cardfetch {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// loadConfig resolves the effective configuration and initialises the
// global logger. Configuration problems end the process with status 1.
func loadConfig(flags map[string]interface{}) *config.Config {
	if flags == nil {
		flags = make(map[string]interface{})
	}
	if logLevel != "" {
		flags["log-level"] = logLevel
	}

	cfg, err := config.Load(configFile, flags)
	if err != nil {
		ui.PrintError("Failed to load configuration", err.Error())
		os.Exit(1)
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		ui.PrintError("Failed to initialize logger", err.Error())
		os.Exit(1)
	}

	return cfg
}
