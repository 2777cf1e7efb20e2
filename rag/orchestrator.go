package rag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/devdocs-ai/devdocs"
	"github.com/google/uuid"
)

// DefaultAskTimeout bounds a single model invocation. A call that exceeds it
// degrades to the fallback answer instead of hanging the caller.
const DefaultAskTimeout = 60 * time.Second

// FallbackMessage is returned whenever the model cannot be reached or fails.
// It directs the user to manual navigation; a raw error never surfaces.
const FallbackMessage = "I'm having trouble searching the documentation files right now. Please navigate using the sidebar or check if the .md files are accessible."

// NoAnswerMessage is returned when the model produces an empty answer.
const NoAnswerMessage = "No specific answer found."

// Ensure Orchestrator implements devdocs.Asker at compile time.
var _ devdocs.Asker = (*Orchestrator)(nil)

// Orchestrator answers documentation questions by combining the assembled
// corpus context with a fixed system instruction and dispatching both to a
// Generator. It holds no state between calls.
type Orchestrator struct {
	catalog   *devdocs.Catalog
	contexts  devdocs.ContextBuilder
	generator devdocs.Generator
	logger    *slog.Logger
	timeout   time.Duration
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger for per-query log records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithTimeout overrides DefaultAskTimeout for the model invocation.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.timeout = d
	}
}

// NewOrchestrator creates an Orchestrator for catalog using contexts and
// generator.
func NewOrchestrator(catalog *devdocs.Catalog, contexts devdocs.ContextBuilder, generator devdocs.Generator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog:   catalog,
		contexts:  contexts,
		generator: generator,
		logger:    slog.New(slog.DiscardHandler),
		timeout:   DefaultAskTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Ask answers a free-text question grounded in the documentation corpus.
// It always returns a well-formed QueryResult: model failures of any kind
// yield FallbackMessage with no sources.
func (o *Orchestrator) Ask(ctx context.Context, query string) *devdocs.QueryResult {
	queryID := uuid.NewString()
	begin := time.Now()

	contextText := o.contexts.BuildContext(ctx)
	instruction := BuildSystemInstruction(o.catalog.ProductNames(), contextText)

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	result, err := o.generator.Generate(ctx, devdocs.GenerateRequest{
		Query:             query,
		SystemInstruction: instruction,
	})
	if err != nil || result == nil {
		o.logger.Warn("ask failed",
			"queryID", queryID,
			"duration", time.Since(begin),
			"err", devdocs.ErrorMessage(err),
		)
		return &devdocs.QueryResult{Text: FallbackMessage}
	}

	text := result.Text
	if text == "" {
		text = NoAnswerMessage
	}

	// Sources stays nil, not empty, when no citations survived.
	var sources []*devdocs.Source
	if len(result.Sources) > 0 {
		sources = result.Sources
	}

	o.logger.Info("ask answered",
		"queryID", queryID,
		"duration", time.Since(begin),
		"sources", len(sources),
	)

	return &devdocs.QueryResult{Text: text, Sources: sources}
}

// BuildSystemInstruction builds the fixed system instruction: role, product
// roster, internal-docs-first priority rules, formatting guidance, and the
// assembled corpus context verbatim.
func BuildSystemInstruction(productNames []string, contextText string) string {
	var sb strings.Builder
	sb.WriteString(`You are "DevDocs AI", a world-class senior staff engineer helping colleagues understand our product ecosystem.`)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "PRODUCTS: %s.\n\n", strings.Join(productNames, ", "))
	sb.WriteString(`GUIDELINES:
1. PRIORITIZE the provided INTERNAL DOCUMENTATION CONTEXT.
2. If the answer is not in internal docs, use GOOGLE SEARCH to provide context from general industry standards (e.g. JWT specs, React patterns).
3. Always specify if information is from "Internal Docs" or "General Tech Standards".
4. Keep answers technical, concise, and professional.
5. Format with clear Markdown headers, bolding, and code blocks.`)
	sb.WriteString("\n\nINTERNAL DOCUMENTATION CONTEXT:\n")
	sb.WriteString(contextText)
	return sb.String()
}
