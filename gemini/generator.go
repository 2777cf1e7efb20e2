// Package gemini implements devdocs.Generator using Google Gemini with the
// Google Search grounding tool enabled.
package gemini

import (
	"context"

	"github.com/devdocs-ai/devdocs"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is specified.
const DefaultModel = "gemini-3-flash-preview"

// temperature is fixed and low: answers should be reproducible and factual.
const temperature = float32(0.2)

// Ensure Generator implements devdocs.Generator at compile time.
var _ devdocs.Generator = (*Generator)(nil)

// Generator invokes Gemini with search augmentation enabled.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. The client may be nil when no
// credential is configured; Generate then fails with EUNAVAILABLE, which the
// orchestration layer converts into its fallback answer.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate sends the query and system instruction to Gemini and reduces the
// response to answer text plus usable web citations.
func (g *Generator) Generate(ctx context.Context, req devdocs.GenerateRequest) (*devdocs.GenerateResult, error) {
	if g.client == nil {
		return nil, devdocs.Errorf(devdocs.EUNAVAILABLE, "gemini client not configured, set GEMINI_API_KEY")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.Query}},
		}},
		BuildConfig(req.SystemInstruction),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, devdocs.Errorf(devdocs.EINTERNAL, "gemini returned nil result")
	}

	return &devdocs.GenerateResult{
		Text:    result.Text(),
		Sources: ExtractSources(result),
	}, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls: the
// system instruction, a fixed low temperature, and the Google Search tool.
func BuildConfig(systemInstruction string) *genai.GenerateContentConfig {
	temp := temperature
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
}

// ExtractSources reduces the response's grounding metadata to web citations.
// Chunks without a web URI are discarded; a chunk with a URI but no title is
// reported as "Resource".
func ExtractSources(result *genai.GenerateContentResponse) []*devdocs.Source {
	if len(result.Candidates) == 0 {
		return nil
	}
	metadata := result.Candidates[0].GroundingMetadata
	if metadata == nil {
		return nil
	}

	var sources []*devdocs.Source
	for _, chunk := range metadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		title := chunk.Web.Title
		if title == "" {
			title = "Resource"
		}
		sources = append(sources, &devdocs.Source{Title: title, URI: chunk.Web.URI})
	}
	return sources
}
