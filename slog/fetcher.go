// Package slog provides structured-logging decorators for justext's
// service interfaces, built on log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/justext-go/justext"
)

// Ensure LoggingFetcher implements justext.Fetcher at compile time.
var _ justext.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a justext.Fetcher, logging each fetch with its URL,
// response size, and duration.
type LoggingFetcher struct {
	next   justext.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher wrapping next.
func NewLoggingFetcher(next justext.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch fetches url via the wrapped fetcher, logging the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()
	html, err := f.next.Fetch(ctx, url)
	duration := time.Since(start)

	if err != nil {
		f.logger.Error("fetch", "url", url, "duration", duration, "err", err)
		return "", err
	}

	f.logger.Info("fetch", "url", url, "bytes", len(html), "duration", duration)
	return html, nil
}

// Close closes the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
