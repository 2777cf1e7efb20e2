package devdocs_test

import (
	"testing"

	"github.com/devdocs-ai/devdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid document passes", func(t *testing.T) {
		t.Parallel()

		doc := &devdocs.Document{ID: "d1", Title: "Tracking", ContentPath: "/docs/tracking.md"}

		assert.NoError(t, doc.Validate())
	})

	t.Run("requires ID", func(t *testing.T) {
		t.Parallel()

		doc := &devdocs.Document{Title: "Tracking", ContentPath: "/docs/tracking.md"}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})

	t.Run("requires content path", func(t *testing.T) {
		t.Parallel()

		doc := &devdocs.Document{ID: "d1", Title: "Tracking"}

		err := doc.Validate()
		require.Error(t, err)
		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires name", func(t *testing.T) {
		t.Parallel()

		p := &devdocs.Product{ID: "p1"}

		err := p.Validate()
		require.Error(t, err)
		assert.Equal(t, devdocs.EINVALID, devdocs.ErrorCode(err))
		assert.Contains(t, devdocs.ErrorMessage(err), "name required")
	})

	t.Run("validates nested documents", func(t *testing.T) {
		t.Parallel()

		p := &devdocs.Product{
			ID:   "p1",
			Name: "API Gateway",
			Docs: []*devdocs.Document{{ID: "d1", Title: "Auth"}},
		}

		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, devdocs.ErrorMessage(err), "content path required")
	})
}

func TestCatalog_ProductNames(t *testing.T) {
	t.Parallel()

	catalog := &devdocs.Catalog{Products: []*devdocs.Product{
		{ID: "a", Name: "Consumer Mobile App"},
		{ID: "b", Name: "API Gateway"},
	}}

	assert.Equal(t, []string{"Consumer Mobile App", "API Gateway"}, catalog.ProductNames())
}

func TestCatalog_DocCount(t *testing.T) {
	t.Parallel()

	catalog := &devdocs.Catalog{Products: []*devdocs.Product{
		{ID: "a", Name: "A", Docs: []*devdocs.Document{{}, {}}},
		{ID: "b", Name: "B", Docs: []*devdocs.Document{{}}},
	}}

	assert.Equal(t, 3, catalog.DocCount())
}

func TestCatalog_FindDoc(t *testing.T) {
	t.Parallel()

	catalog := &devdocs.Catalog{Products: []*devdocs.Product{
		{
			ID:   "backend-gateway",
			Name: "API Gateway",
			Docs: []*devdocs.Document{
				{ID: "auth", Title: "Authentication", Slug: "auth-flow", ContentPath: "/docs/auth.md"},
			},
		},
	}}

	t.Run("returns document by product and slug", func(t *testing.T) {
		t.Parallel()

		doc, err := catalog.FindDoc("backend-gateway", "auth-flow")
		require.NoError(t, err)
		assert.Equal(t, "Authentication", doc.Title)
	})

	t.Run("returns ENOTFOUND for unknown product", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.FindDoc("nope", "auth-flow")
		require.Error(t, err)
		assert.Equal(t, devdocs.ENOTFOUND, devdocs.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown slug", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.FindDoc("backend-gateway", "nope")
		require.Error(t, err)
		assert.Equal(t, devdocs.ENOTFOUND, devdocs.ErrorCode(err))
	})
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	catalog := devdocs.DefaultCatalog()

	require.NoError(t, catalog.Validate())
	assert.Len(t, catalog.Products, 3)
	assert.Equal(t, []string{"Consumer Mobile App", "Delivery Partner App", "API Gateway"}, catalog.ProductNames())
	assert.Equal(t, 10, catalog.DocCount())
}
