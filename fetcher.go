package devdocs

import "context"

// Fetcher retrieves raw document content by its content path.
// The path is opaque to callers; implementations decide how to resolve it
// (HTTP, local filesystem, etc.).
type Fetcher interface {
	// Fetch returns the raw text at the given content path.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, path string) (text string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
