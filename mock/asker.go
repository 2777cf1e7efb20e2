package mock

import (
	"context"

	"github.com/devdocs-ai/devdocs"
)

var _ devdocs.Asker = (*Asker)(nil)

// Asker is a mock implementation of devdocs.Asker.
type Asker struct {
	AskFn func(ctx context.Context, query string) *devdocs.QueryResult
}

func (a *Asker) Ask(ctx context.Context, query string) *devdocs.QueryResult {
	return a.AskFn(ctx, query)
}
