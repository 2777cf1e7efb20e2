//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/devdocs-ai/devdocs"
	"github.com/devdocs-ai/devdocs/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGenerator_Integration_ReturnsAnswer(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	generator := gemini.NewGenerator(client, "")

	result, err := generator.Generate(ctx, devdocs.GenerateRequest{
		Query:             "What does the Authentication document say about tokens?",
		SystemInstruction: "Answer using the context below.\n\nINTERNAL DOCUMENTATION CONTEXT:\nProduct: API Gateway\nDoc Title: Authentication\nCategory: Security\nContent: Use JWT tokens for all requests....",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Text)
	assert.Contains(t, result.Text, "JWT")
}
