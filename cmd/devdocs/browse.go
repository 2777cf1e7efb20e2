package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/devdocs-ai/devdocs/tui"
)

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	program := tea.NewProgram(tui.New(deps.Catalog, deps.Asker), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
