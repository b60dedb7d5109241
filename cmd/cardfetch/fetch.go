package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"cardfetch/pkg/client"
	"cardfetch/pkg/errors"
	"cardfetch/pkg/fetcher"
	"cardfetch/pkg/logger"
	"cardfetch/pkg/ratelimit"
	"cardfetch/pkg/ui"
)

var (
	// Fetch command flags
	sourceURL string
	outputDir string
	delay     time.Duration
	timeout   time.Duration
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download every card image missing from the output directory",
	Long: `Fetch the listing page, collect every link ending in .jpg and download each
image that is not already present in the output directory.

The run stops at the first failed download. Files saved before the failure
are kept, and the next run skips them.`,
	Example: `  # Download using the configured source and directory
  cardfetch fetch

  # Mirror into a different directory with a longer pause between downloads
  cardfetch fetch --output ./cards --delay 2s`,
	Args: cobra.NoArgs,
	Run:  runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	addFetchFlags(fetchCmd)
}

func addFetchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sourceURL, "source", "s", "", "listing page URL")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory the images are saved to")
	cmd.Flags().DurationVar(&delay, "delay", 0, "pause after each download (default 500ms)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "timeout for each HTTP request (default 30s)")
}

func runFetch(cmd *cobra.Command, args []string) {
	flags := make(map[string]interface{})
	if sourceURL != "" {
		flags["source"] = sourceURL
	}
	if outputDir != "" {
		flags["output"] = outputDir
	}
	if cmd.Flags().Changed("delay") {
		flags["delay"] = delay
	}
	if cmd.Flags().Changed("timeout") {
		flags["timeout"] = timeout
	}

	cfg := loadConfig(flags)
	log := logger.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := fetcher.New(
		fetcher.WithClient(client.New(cfg.Source.Timeout, cfg.Source.UserAgent, log)),
		fetcher.WithPacer(ratelimit.NewFixedDelay(cfg.Download.Delay)),
		fetcher.WithLogger(log),
		fetcher.WithPrinter(ui.NewConsole(os.Stdout)),
		fetcher.WithSuffix(cfg.Download.Suffix),
	)

	log.InfoWithFields("Starting card download", map[string]interface{}{
		"source": cfg.Source.URL,
		"output": cfg.Output.Directory,
	})

	result, err := f.FetchAll(ctx, cfg.Source.URL, cfg.Output.Directory)
	if err != nil {
		// Both kinds end the run; the exit status stays 0
		if errors.IsTransport(err) {
			ui.PrintError("Error downloading cards", err)
		} else {
			ui.PrintError("An unexpected error occurred", err)
		}
		log.WithError(err).WithField("kind", string(errors.KindOf(err))).Error("Card download failed")
		return
	}

	log.InfoWithFields("Card download finished", map[string]interface{}{
		"discovered": len(result.Discovered),
		"downloaded": len(result.Downloaded),
		"skipped":    len(result.Skipped),
	})
}
