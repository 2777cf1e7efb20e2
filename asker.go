package devdocs

import "context"

// Source is a web reference the model cites as grounding for part of an
// answer.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// QueryResult is the uniform outcome of a documentation question. It is the
// only type exposed across the core's boundary: success, degraded, and empty
// outcomes all take this shape.
//
// Sources is nil, and omitted from JSON, when the model produced no usable
// citations. Callers must treat "no sources" and "sources present" as
// distinct states.
type QueryResult struct {
	Text    string    `json:"text"`
	Sources []*Source `json:"sources,omitempty"`
}

// Asker answers natural language questions about the documentation corpus.
type Asker interface {
	// Ask answers a free-text question grounded in the documentation
	// corpus. It never fails: any underlying error is converted into a
	// QueryResult carrying a fixed fallback message.
	Ask(ctx context.Context, query string) *QueryResult
}

// ContextBuilder assembles the corpus snapshot passed to the model as
// grounding material for one query.
type ContextBuilder interface {
	// BuildContext returns the concatenated, bounded-size encoding of every
	// document in the catalog. A document that cannot be fetched
	// contributes an empty body rather than aborting the build.
	BuildContext(ctx context.Context) string
}

// GenerateRequest carries one model invocation.
type GenerateRequest struct {
	// Query is the user's question, passed as the primary model input.
	Query string

	// SystemInstruction is the fixed role, rules, and corpus context.
	SystemInstruction string
}

// GenerateResult is the shape of a model response the core depends on.
type GenerateResult struct {
	// Text is the model's answer.
	Text string

	// Sources are the usable web citations reported as grounding, in the
	// order the model produced them. May be empty.
	Sources []*Source
}

// Generator invokes an external generative model with search augmentation
// enabled. It is a narrow, vendor-agnostic capability so the orchestration
// layer can be tested with canned responses and injected failures.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}
