package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/devdocs-ai/devdocs"
	"github.com/devdocs-ai/devdocs/cache"
	"github.com/devdocs-ai/devdocs/gemini"
	devdocshttp "github.com/devdocs-ai/devdocs/http"
	"github.com/devdocs-ai/devdocs/rag"
	devslog "github.com/devdocs-ai/devdocs/slog"
	"github.com/devdocs-ai/devdocs/yaml"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Catalog and asker, exposed for end-to-end testing.
	Catalog *devdocs.Catalog
	Asker   devdocs.Asker

	fetcher devdocs.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.fetcher != nil {
		return m.fetcher.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("devdocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'devdocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Load catalog: explicit file first, then built-in registry.
	if cli.Catalog != "" {
		m.Catalog, err = yaml.LoadCatalog(cli.Catalog)
		if err != nil {
			return fmt.Errorf("failed to load catalog %q: %w", cli.Catalog, err)
		}
	} else {
		m.Catalog = devdocs.DefaultCatalog()
	}
	deps.Catalog = m.Catalog

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Fetcher chain: HTTP, logged, cached for the process lifetime.
	var fetcher devdocs.Fetcher = devdocshttp.NewFetcher(devdocshttp.WithBaseURL(cli.BaseURL))
	fetcher = devslog.NewLoggingFetcher(fetcher, logger)
	m.fetcher = cache.NewFetcher(fetcher)
	defer m.Close()

	if cmd == "ask" || cmd == "browse" {
		// A missing credential degrades to the fallback answer at ask
		// time; it never crashes startup.
		var client *genai.Client
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			client, err = genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				logger.Warn("gemini client unavailable", "err", err.Error())
				client = nil
			}
		} else {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set. Get an API key at https://aistudio.google.com/apikey")
		}

		generator := gemini.NewGenerator(client, os.Getenv("DEVDOCS_MODEL"))
		assembler := rag.NewAssembler(m.Catalog, m.fetcher)
		m.Asker = rag.NewOrchestrator(m.Catalog, assembler, generator, rag.WithLogger(logger))
		deps.Asker = m.Asker
	}

	return kongCtx.Run(deps)
}
