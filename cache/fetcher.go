// Package cache provides a memoizing decorator for devdocs.Fetcher.
// Successful fetches are cached for the process lifetime; failures are not
// cached so transient errors self-heal on the next access.
package cache

import (
	"context"
	"sync"

	"github.com/devdocs-ai/devdocs"
	"golang.org/x/sync/singleflight"
)

// Ensure Fetcher implements devdocs.Fetcher at compile time.
var _ devdocs.Fetcher = (*Fetcher)(nil)

// Fetcher wraps an inner Fetcher with an unbounded in-memory cache keyed by
// content path. At most one fetch per distinct path is ever issued while a
// value is cached; concurrent fetches of the same path are coalesced into a
// single in-flight request.
//
// The cache never evicts and never invalidates. This is acceptable for a
// short-lived client process; a long-lived service should wrap this in a
// bounded cache instead of changing the behavior here.
type Fetcher struct {
	inner devdocs.Fetcher
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]string
}

// NewFetcher creates a caching Fetcher around inner.
func NewFetcher(inner devdocs.Fetcher) *Fetcher {
	return &Fetcher{
		inner:   inner,
		entries: make(map[string]string),
	}
}

// Fetch returns the cached text for path, fetching and memoizing it on the
// first successful access. A failed fetch is not memoized; the error is
// returned and the next call retries.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	f.mu.RLock()
	text, ok := f.entries[path]
	f.mu.RUnlock()
	if ok {
		return text, nil
	}

	v, err, _ := f.group.Do(path, func() (interface{}, error) {
		// Another flight may have filled the entry between the read
		// above and acquiring the flight.
		f.mu.RLock()
		text, ok := f.entries[path]
		f.mu.RUnlock()
		if ok {
			return text, nil
		}

		text, err := f.inner.Fetch(ctx, path)
		if err != nil {
			return "", err
		}

		f.mu.Lock()
		f.entries[path] = text
		f.mu.Unlock()
		return text, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Len returns the number of cached entries.
func (f *Fetcher) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}

// Close releases the inner fetcher's resources. The cache itself holds none.
func (f *Fetcher) Close() error {
	return f.inner.Close()
}
