package mock

import (
	"context"

	"github.com/devdocs-ai/devdocs"
)

var _ devdocs.Generator = (*Generator)(nil)

// Generator is a mock implementation of devdocs.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, req devdocs.GenerateRequest) (*devdocs.GenerateResult, error)
}

func (g *Generator) Generate(ctx context.Context, req devdocs.GenerateRequest) (*devdocs.GenerateResult, error) {
	return g.GenerateFn(ctx, req)
}
