// Package tui provides the interactive terminal browser: instant title
// suggestions on every keystroke and grounded answers on Enter.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/devdocs-ai/devdocs"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true)
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	answerBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	sourceStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
)

// answerMsg delivers an asynchronous RAG answer back to the update loop.
type answerMsg struct {
	query  string
	result *devdocs.QueryResult
}

// Model is the Bubble Tea model for the documentation browser.
type Model struct {
	catalog *devdocs.Catalog
	asker   devdocs.Asker

	input       textinput.Model
	viewport    viewport.Model
	suggestions []devdocs.SearchResult
	status      string
	asking      bool
	ready       bool
}

// New creates a new TUI model over catalog using asker for questions.
func New(catalog *devdocs.Catalog, asker devdocs.Asker) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type to search titles, press Enter to ask"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		catalog:  catalog,
		asker:    asker,
		input:    ti,
		viewport: vp,
		status:   fmt.Sprintf("%d documents across %d products.", catalog.DocCount(), len(catalog.Products)),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key, window, and answer events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ah := answerBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		// header + status + suggestion block + spacer
		reserved := 1 + 1 + devdocs.MaxSearchResults + 1 + qh
		vh := msg.Height - reserved - ah
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		return m, nil

	case answerMsg:
		m.asking = false
		m.status = fmt.Sprintf("Answer for %q", msg.query)
		m.viewport.SetContent(renderAnswer(msg.result))
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			query := strings.TrimSpace(m.input.Value())
			if query != "" && !m.asking {
				m.asking = true
				m.status = fmt.Sprintf("Asking about %q...", query)
				return m, ask(m.asker, query)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Suggestions are recomputed on every keystroke; the index is a
	// cheap linear scan, never memoized.
	m.suggestions = m.catalog.SearchTitles(m.input.Value())
	return m, cmd
}

// View renders the browser layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("DevDocs AI")
	answer := answerBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + m.renderSuggestions() + "\n" + answer + "\n" + input + "\n" + status
}

func (m Model) renderSuggestions() string {
	lines := make([]string, devdocs.MaxSearchResults)
	for i := range lines {
		if i < len(m.suggestions) {
			s := m.suggestions[i]
			lines[i] = suggestionStyle.Render(
				fmt.Sprintf("%s %s — %s (%s)", s.Product.Icon, s.Product.Name, s.Doc.Title, s.Doc.Category))
		}
	}
	return strings.Join(lines, "\n")
}

func ask(asker devdocs.Asker, query string) tea.Cmd {
	return func() tea.Msg {
		return answerMsg{query: query, result: asker.Ask(context.Background(), query)}
	}
}

func renderAnswer(result *devdocs.QueryResult) string {
	var sb strings.Builder
	sb.WriteString(result.Text)
	if len(result.Sources) > 0 {
		sb.WriteString("\n\nSources:\n")
		for _, s := range result.Sources {
			sb.WriteString(sourceStyle.Render(fmt.Sprintf("  %s — %s", s.Title, s.URI)))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
