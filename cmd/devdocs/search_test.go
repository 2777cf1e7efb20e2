package main

import (
	"bytes"
	"testing"

	"github.com/devdocs-ai/devdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints matching titles with product context", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		deps := &Dependencies{
			Stdout:  &stdout,
			Catalog: devdocs.DefaultCatalog(),
		}

		cmd := &SearchCmd{Query: "order"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "Order Lifecycle")
		assert.Contains(t, stdout.String(), "Consumer Mobile App")
	})

	t.Run("reports when nothing matches", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		deps := &Dependencies{
			Stdout:  &stdout,
			Catalog: devdocs.DefaultCatalog(),
		}

		cmd := &SearchCmd{Query: "kubernetes"}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, "No matching titles.\n", stdout.String())
	})
}
