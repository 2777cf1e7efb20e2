package main

import "fmt"

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	result := deps.Asker.Ask(deps.Ctx, c.Question)

	fmt.Fprintln(deps.Stdout, result.Text)

	if len(result.Sources) > 0 {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Sources:")
		for _, s := range result.Sources {
			fmt.Fprintf(deps.Stdout, "  %s — %s\n", s.Title, s.URI)
		}
	}

	return nil
}
