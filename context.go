package devdocs

import (
	"fmt"
	"strings"
)

// SnippetBodyLimit is the maximum number of characters of a document body
// included in a context snippet. Bodies beyond this offset are silently
// dropped to bound the size of the model context.
const SnippetBodyLimit = 1500

// ContextSeparator joins encoded snippets into a single context string.
const ContextSeparator = "\n\n---\n\n"

// ContextSnippet is the per-document slice of the corpus included in the
// model context. Snippets are ephemeral: recomputed on every query, never
// stored.
type ContextSnippet struct {
	ProductName string
	DocTitle    string
	Category    string
	Body        string
}

// NewContextSnippet builds a snippet for a document, truncating body to
// SnippetBodyLimit characters.
func NewContextSnippet(product *Product, doc *Document, body string) *ContextSnippet {
	return &ContextSnippet{
		ProductName: product.Name,
		DocTitle:    doc.Title,
		Category:    doc.Category,
		Body:        TruncateBody(body),
	}
}

// TruncateBody returns the first SnippetBodyLimit characters of body,
// unmodified otherwise. Truncation is rune-aware so a multi-byte character
// is never split.
func TruncateBody(body string) string {
	if len(body) <= SnippetBodyLimit {
		return body
	}
	runes := []rune(body)
	if len(runes) <= SnippetBodyLimit {
		return body
	}
	return string(runes[:SnippetBodyLimit])
}

// Encode returns the textual encoding of the snippet as it appears in the
// assembled context.
func (s *ContextSnippet) Encode() string {
	return fmt.Sprintf("Product: %s\nDoc Title: %s\nCategory: %s\nContent: %s...",
		s.ProductName, s.DocTitle, s.Category, s.Body)
}

// FormatContext encodes snippets and joins them with ContextSeparator.
// Returns an empty string for an empty corpus.
func FormatContext(snippets []*ContextSnippet) string {
	if len(snippets) == 0 {
		return ""
	}

	parts := make([]string, 0, len(snippets))
	for _, s := range snippets {
		parts = append(parts, s.Encode())
	}

	return strings.Join(parts, ContextSeparator)
}
