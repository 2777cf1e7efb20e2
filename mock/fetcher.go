package mock

import (
	"context"

	"github.com/devdocs-ai/devdocs"
)

var _ devdocs.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of devdocs.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, path string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	return f.FetchFn(ctx, path)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
