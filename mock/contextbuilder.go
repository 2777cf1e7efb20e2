package mock

import (
	"context"

	"github.com/devdocs-ai/devdocs"
)

var _ devdocs.ContextBuilder = (*ContextBuilder)(nil)

// ContextBuilder is a mock implementation of devdocs.ContextBuilder.
type ContextBuilder struct {
	BuildContextFn func(ctx context.Context) string
}

func (b *ContextBuilder) BuildContext(ctx context.Context) string {
	return b.BuildContextFn(ctx)
}
