package main

import "fmt"

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results := deps.Catalog.SearchTitles(c.Query)

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching titles.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s  (%s, %s)\n", r.Product.Name, r.Doc.Title, r.Doc.Category, r.Doc.Slug)
	}

	return nil
}
