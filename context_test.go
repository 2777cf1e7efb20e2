package devdocs_test

import (
	"strings"
	"testing"

	"github.com/devdocs-ai/devdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateBody(t *testing.T) {
	t.Parallel()

	t.Run("leaves short bodies unmodified", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Use JWT tokens.", devdocs.TruncateBody("Use JWT tokens."))
	})

	t.Run("truncates to exactly the first 1500 characters", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("a", 1499) + "XYZ"

		got := devdocs.TruncateBody(body)

		assert.Len(t, got, devdocs.SnippetBodyLimit)
		assert.Equal(t, body[:devdocs.SnippetBodyLimit], got)
		assert.True(t, strings.HasSuffix(got, "X"))
	})

	t.Run("does not split multi-byte characters", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("é", devdocs.SnippetBodyLimit+10)

		got := devdocs.TruncateBody(body)

		assert.Equal(t, strings.Repeat("é", devdocs.SnippetBodyLimit), got)
	})
}

func TestContextSnippet_Encode(t *testing.T) {
	t.Parallel()

	product := &devdocs.Product{Name: "API Gateway"}
	doc := &devdocs.Document{Title: "Authentication", Category: "Security"}

	snippet := devdocs.NewContextSnippet(product, doc, "Use JWT tokens for all requests.")

	encoded := snippet.Encode()

	assert.Equal(t, "Product: API Gateway\nDoc Title: Authentication\nCategory: Security\nContent: Use JWT tokens for all requests....", encoded)
}

func TestFormatContext(t *testing.T) {
	t.Parallel()

	t.Run("joins snippets with separator", func(t *testing.T) {
		t.Parallel()

		snippets := []*devdocs.ContextSnippet{
			{ProductName: "A", DocTitle: "One", Category: "Core", Body: "first"},
			{ProductName: "B", DocTitle: "Two", Category: "Core", Body: "second"},
		}

		result := devdocs.FormatContext(snippets)

		parts := strings.Split(result, devdocs.ContextSeparator)
		require.Len(t, parts, 2)
		assert.Contains(t, parts[0], "Content: first...")
		assert.Contains(t, parts[1], "Content: second...")
	})

	t.Run("returns empty string for empty corpus", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, devdocs.FormatContext(nil))
		assert.Empty(t, devdocs.FormatContext([]*devdocs.ContextSnippet{}))
	})

	t.Run("failed fetch contributes empty body", func(t *testing.T) {
		t.Parallel()

		snippets := []*devdocs.ContextSnippet{
			{ProductName: "A", DocTitle: "One", Category: "Core", Body: ""},
		}

		result := devdocs.FormatContext(snippets)

		assert.Contains(t, result, "Content: ...")
	})
}
