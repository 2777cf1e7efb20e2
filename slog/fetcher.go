// Package slog provides logging decorators for devdocs interfaces using the
// standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/devdocs-ai/devdocs"
)

// Ensure LoggingFetcher implements devdocs.Fetcher at compile time.
var _ devdocs.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs each fetch with size, duration,
// and a content hash useful for spotting changed documents across runs.
type LoggingFetcher struct {
	inner  devdocs.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(inner devdocs.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{inner: inner, logger: logger}
}

// Fetch delegates to the inner fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, path string) (string, error) {
	begin := time.Now()
	text, err := f.inner.Fetch(ctx, path)
	if err != nil {
		f.logger.Error("fetch",
			"path", path,
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return "", err
	}

	f.logger.Info("fetch",
		"path", path,
		"bytes", len(text),
		"hash", xxhash.Sum64String(text),
		"duration", time.Since(begin),
	)
	return text, nil
}

// Close delegates to the inner fetcher.
func (f *LoggingFetcher) Close() error {
	return f.inner.Close()
}
