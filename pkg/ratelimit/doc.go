// Package ratelimit paces requests against the card server.
//
// The fetcher pauses for a fixed delay after each image it downloads.
// Skipped images do not pause, so a fully up to date directory is checked
// without any waiting.
//
// Usage:
//
//	pacer := ratelimit.NewFixedDelay(500 * time.Millisecond)
//	if err := pacer.Wait(ctx); err != nil {
//	    return err // context cancelled
//	}
package ratelimit
