package devdocs

import "strings"

// MaxSearchResults caps the number of title search suggestions returned.
const MaxSearchResults = 5

// SearchResult pairs a matched document with the product that owns it.
type SearchResult struct {
	Product *Product
	Doc     *Document
}

// SearchTitles performs a case-insensitive substring match of query against
// every document title, in catalog order, returning at most MaxSearchResults
// matches. An empty or whitespace-only query returns no results.
//
// This is the instant suggestion index, not the retrieval mechanism used for
// question answering: it answers "which pages mention this in the title".
func (c *Catalog) SearchTitles(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []SearchResult
	for _, p := range c.Products {
		for _, d := range p.Docs {
			if strings.Contains(strings.ToLower(d.Title), q) {
				results = append(results, SearchResult{Product: p, Doc: d})
				if len(results) == MaxSearchResults {
					return results
				}
			}
		}
	}
	return results
}
