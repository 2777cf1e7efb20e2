// Package devdocs provides the retrieval-and-query core of a product
// documentation browser. It assembles a bounded context from a multi-product
// Markdown corpus and answers natural language questions about it through a
// generative model with web-search grounding, alongside an instant title
// search over the same catalog.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, gemini/, yaml/).
package devdocs
