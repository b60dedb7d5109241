package fetcher

import (
	"bytes"
	"context"
	"fmt"

	"cardfetch/pkg/client"
	"cardfetch/pkg/config"
	"cardfetch/pkg/errors"
	"cardfetch/pkg/listing"
	"cardfetch/pkg/logger"
	"cardfetch/pkg/ratelimit"
	"cardfetch/pkg/storage"
	"cardfetch/pkg/ui"
)

// Getter fetches a URL and returns the fully read response
type Getter interface {
	Get(ctx context.Context, url string) (*client.Response, error)
}

// Result records what a run did, in discovery order
type Result struct {
	Source     string
	OutputDir  string
	Discovered []string
	Downloaded []string
	Skipped    []string
}

// Fetcher mirrors a listing page's card images into a local directory
type Fetcher struct {
	client  Getter
	pacer   ratelimit.Pacer
	logger  logger.Logger
	printer ui.Printer
	suffix  string
}

// Option configures a Fetcher
type Option func(*Fetcher)

// WithClient sets the HTTP client used for the listing and the images
func WithClient(c Getter) Option {
	return func(f *Fetcher) { f.client = c }
}

// WithPacer sets the pause applied after each download
func WithPacer(p ratelimit.Pacer) Option {
	return func(f *Fetcher) { f.pacer = p }
}

// WithLogger sets the structured logger
func WithLogger(l logger.Logger) Option {
	return func(f *Fetcher) { f.logger = l }
}

// WithPrinter sets where progress messages go
func WithPrinter(p ui.Printer) Option {
	return func(f *Fetcher) { f.printer = p }
}

// WithSuffix sets the href suffix that marks a card image
func WithSuffix(suffix string) Option {
	return func(f *Fetcher) { f.suffix = suffix }
}

// New creates a Fetcher. Unset options fall back to the defaults of
// config.DefaultConfig.
func New(opts ...Option) *Fetcher {
	defaults := config.DefaultConfig()

	f := &Fetcher{suffix: defaults.Download.Suffix}
	for _, opt := range opts {
		opt(f)
	}

	if f.logger == nil {
		f.logger = logger.GetLogger()
	}
	if f.client == nil {
		f.client = client.New(defaults.Source.Timeout, defaults.Source.UserAgent, f.logger)
	}
	if f.pacer == nil {
		f.pacer = ratelimit.NewFixedDelay(defaults.Download.Delay)
	}
	if f.printer == nil {
		f.printer = ui.NewConsole(nil)
	}

	return f
}

// FetchAll downloads every card image referenced by sourceURL that is
// missing from outputDir.
//
// The returned Result is never nil; on error it holds the work completed
// before the run stopped. Network failures are reported as transport errors,
// anything else as unexpected errors.
func (f *Fetcher) FetchAll(ctx context.Context, sourceURL, outputDir string) (*Result, error) {
	result := &Result{
		Source:     sourceURL,
		OutputDir:  outputDir,
		Discovered: []string{},
		Downloaded: []string{},
		Skipped:    []string{},
	}

	log := f.logger.WithFields(map[string]interface{}{
		"source": sourceURL,
		"output": outputDir,
	})

	store, err := storage.NewManager(outputDir)
	if err != nil {
		return result, errors.Unexpected("create output directory", err)
	}

	log.Debug("Fetching listing page")
	page, err := f.client.Get(ctx, sourceURL)
	if err != nil {
		return result, err
	}

	refs, err := listing.Extract(bytes.NewReader(page.Body), f.suffix)
	if err != nil {
		return result, errors.Unexpected("parse listing", err)
	}
	result.Discovered = refs

	f.printer.Info(fmt.Sprintf("Found %d card images to download", len(refs)))
	log.InfoWithFields("Listing parsed", map[string]interface{}{"references": len(refs)})

	for _, ref := range refs {
		if err := f.fetchOne(ctx, store, sourceURL, ref, result); err != nil {
			log.WithError(err).WarnWithFields("Run aborted", map[string]interface{}{
				"reference":  ref,
				"downloaded": len(result.Downloaded),
				"skipped":    len(result.Skipped),
			})
			return result, err
		}
	}

	f.printer.Success("Download completed successfully!")
	log.InfoWithFields("Run finished", map[string]interface{}{
		"downloaded": len(result.Downloaded),
		"skipped":    len(result.Skipped),
	})

	return result, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, store *storage.Manager, base, ref string, result *Result) error {
	target, err := listing.Resolve(base, ref)
	if err != nil {
		return errors.Unexpected("resolve reference", err)
	}

	exists, err := store.Exists(ref)
	if err != nil {
		return errors.Unexpected("check existing file", err)
	}
	if exists {
		f.printer.Warning(fmt.Sprintf("Skipping %s - already exists", ref))
		logger.LogDownload(f.logger, ref, false, nil)
		result.Skipped = append(result.Skipped, ref)
		return nil
	}

	f.printer.Info(fmt.Sprintf("Downloading %s...", ref))
	resp, err := f.client.Get(ctx, target)
	if err != nil {
		logger.LogDownload(f.logger, ref, false, err)
		return err
	}

	if err := store.Save(bytes.NewReader(resp.Body), ref); err != nil {
		logger.LogDownload(f.logger, ref, false, err)
		return errors.Unexpected("write card file", err)
	}
	logger.LogDownload(f.logger, ref, true, nil)
	result.Downloaded = append(result.Downloaded, ref)

	if err := f.pacer.Wait(ctx); err != nil {
		return errors.Unexpected("pause between downloads", err)
	}
	return nil
}
