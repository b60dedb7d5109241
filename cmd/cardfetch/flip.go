package main

import (
	"os"

	"github.com/spf13/cobra"

	"cardfetch/pkg/flip"
	"cardfetch/pkg/logger"
	"cardfetch/pkg/ui"
)

var (
	flipDir     string
	flipQuality int
)

var flipCmd = &cobra.Command{
	Use:   "flip [file...]",
	Short: "Write a 180-degree rotated copy of each wildcard image",
	Long: `Rotate each listed image by 180 degrees and save the result next to it with
"_flipped" inserted before the extension, e.g. wildbg.jpg -> wildbg_flipped.jpg.

Without arguments the configured wildcard list is used. A file that cannot be
processed is reported and the remaining files are still flipped.`,
	Example: `  # Flip the default wildcards in images/cards
  cardfetch flip

  # Flip two files from another directory
  cardfetch flip --dir ./cards wildbg.jpg wildgt.jpg`,
	Run: runFlip,
}

func init() {
	rootCmd.AddCommand(flipCmd)

	flipCmd.Flags().StringVarP(&flipDir, "dir", "d", "", "directory containing the images (default images/cards)")
	flipCmd.Flags().IntVarP(&flipQuality, "quality", "q", 0, "JPEG quality of the flipped images (default 95)")
}

func runFlip(cmd *cobra.Command, args []string) {
	flags := make(map[string]interface{})
	if flipDir != "" {
		flags["flip-dir"] = flipDir
	}
	if len(args) > 0 {
		flags["flip-files"] = args
	}
	if cmd.Flags().Changed("quality") {
		flags["quality"] = flipQuality
	}

	cfg := loadConfig(flags)
	log := logger.GetLogger()

	results := flip.New(cfg.Flip.Quality, cfg.Flip.Suffix, log, ui.NewConsole(os.Stdout)).
		Run(cfg.Flip.Directory, cfg.Flip.Files)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.InfoWithFields("Flip finished", map[string]interface{}{
		"directory": cfg.Flip.Directory,
		"files":     len(results),
		"failed":    failed,
	})
}
