package main

import (
	"context"
	"io"

	"github.com/devdocs-ai/devdocs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Catalog *devdocs.Catalog
	Asker   devdocs.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Catalog string `help:"Path to a YAML catalog file (defaults to the built-in registry)" env:"DEVDOCS_CATALOG"`
	BaseURL string `help:"Base URL that relative content paths are resolved against" env:"DEVDOCS_BASE_URL"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Ask      AskCmd      `cmd:"" help:"Ask a question about the documentation"`
	Search   SearchCmd   `cmd:"" help:"Search document titles"`
	Products ProductsCmd `cmd:"" help:"List products in the catalog"`
	Browse   BrowseCmd   `cmd:"" help:"Browse interactively with instant search and Q&A"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the documentation"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Title substring to search for"`
}

// ProductsCmd is the "products" subcommand.
type ProductsCmd struct{}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct{}
