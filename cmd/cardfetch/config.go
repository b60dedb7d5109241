package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cardfetch/pkg/config"
	"cardfetch/pkg/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and manage configuration",
	Long: `Show the effective configuration of cardfetch.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables (CARDFETCH_*, also read from .env)
  - Configuration file
  - Default values (lowest priority)`,
	Run: runConfigShow,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Run:   runConfigShow,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to a file",
	Long: `Write the default configuration to .cardfetch.yaml, or to the path given
with --config. An existing file is never overwritten.`,
	Run: runConfigInit,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration for invalid values",
	Run:   runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showCmd)
	configCmd.AddCommand(initCmd)
	configCmd.AddCommand(validateCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg := loadConfig(nil)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		ui.PrintError("Failed to format configuration", err.Error())
		os.Exit(1)
	}

	fmt.Print(string(data))
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path := configFile
	if path == "" {
		path = ".cardfetch.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		ui.PrintError("Configuration file already exists", path)
		os.Exit(1)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		ui.PrintError("Failed to create configuration file", err.Error())
		os.Exit(1)
	}

	ui.PrintSuccess("Configuration file created: " + path)
}

func runConfigValidate(cmd *cobra.Command, args []string) {
	cfg := loadConfig(nil)

	ui.PrintSuccess("Configuration is valid")
	ui.PrintInfo("Source", cfg.Source.URL)
	ui.PrintInfo("Output directory", cfg.Output.Directory)
	ui.PrintInfo("Delay", cfg.Download.Delay.String())
	ui.PrintInfo("Flip directory", cfg.Flip.Directory)
	ui.PrintInfo("Log level", cfg.Logging.Level)
}
