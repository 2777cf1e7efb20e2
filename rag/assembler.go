// Package rag implements context assembly and query orchestration for
// retrieval-augmented question answering over the documentation catalog.
package rag

import (
	"context"

	"github.com/devdocs-ai/devdocs"
	"golang.org/x/sync/errgroup"
)

// Ensure Assembler implements devdocs.ContextBuilder at compile time.
var _ devdocs.ContextBuilder = (*Assembler)(nil)

// Assembler builds the corpus snapshot used as model grounding. It fetches
// every document in the catalog through the given fetcher, which is expected
// to be a caching fetcher so repeated builds stay cheap.
type Assembler struct {
	catalog *devdocs.Catalog
	fetcher devdocs.Fetcher
}

// NewAssembler creates an Assembler over catalog using fetcher.
func NewAssembler(catalog *devdocs.Catalog, fetcher devdocs.Fetcher) *Assembler {
	return &Assembler{catalog: catalog, fetcher: fetcher}
}

// BuildContext fetches every document body concurrently and returns the
// encoded snippets joined in catalog order. A document that fails to fetch
// contributes an empty body; one missing document never blocks answering
// questions about the others. An empty catalog yields an empty string.
func (a *Assembler) BuildContext(ctx context.Context) string {
	type entry struct {
		product *devdocs.Product
		doc     *devdocs.Document
	}

	var entries []entry
	for _, p := range a.catalog.Products {
		for _, d := range p.Docs {
			entries = append(entries, entry{product: p, doc: d})
		}
	}

	snippets := make([]*devdocs.ContextSnippet, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	for i, e := range entries {
		g.Go(func() error {
			body, err := a.fetcher.Fetch(ctx, e.doc.ContentPath)
			if err != nil {
				// Unavailable documents degrade to an empty body.
				body = ""
			}
			snippets[i] = devdocs.NewContextSnippet(e.product, e.doc, body)
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors; Wait only gathers

	return devdocs.FormatContext(snippets)
}
