// Package logger provides a structured logging interface for cardfetch.
//
// It wraps the zerolog library and supports:
//   - Log levels (Debug, Info, Warn, Error)
//   - Structured logging with fields
//   - Human readable console output on stderr
//   - Optional file output with size based rotation (lumberjack)
//   - A global logger instance for the CLI
//
// Basic Usage:
//
//	err := logger.Initialize(&config.LoggingConfig{Level: "info"})
//
//	log := logger.GetLogger()
//	log.Info("Fetch started")
//	log.WithField("reference", "wildbg.jpg").Info("Downloading")
//	log.WithError(err).Error("Fetch failed")
//
// Components take a Logger in their constructor; tests pass NewTestLogger
// to assert on what was logged, or NewNopLogger to silence output.
package logger
