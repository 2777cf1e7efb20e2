// Package http provides an HTTP-based implementation of devdocs.Fetcher
// for retrieving raw Markdown document content.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/devdocs-ai/devdocs"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements devdocs.Fetcher at compile time.
var _ devdocs.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves document content over HTTP. Relative content paths are
// resolved against a base URL so catalogs can use site-relative paths.
type Fetcher struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the base URL that content paths are resolved against.
// Paths that are already absolute URLs are used as-is.
func WithBaseURL(base string) Option {
	return func(f *Fetcher) {
		f.baseURL = base
	}
}

// WithRateLimit throttles fetches to n requests per second.
// No throttling is applied if not specified.
func WithRateLimit(n float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(n), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the raw text content at the given path.
// A non-2xx response is reported as EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.resolve(path), nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", devdocs.Errorf(devdocs.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func (f *Fetcher) resolve(path string) string {
	if f.baseURL == "" || !isRelative(path) {
		return path
	}
	return f.baseURL + path
}

func isRelative(path string) bool {
	return len(path) > 0 && path[0] == '/'
}
