package main

import "fmt"

// Run executes the products command.
func (c *ProductsCmd) Run(deps *Dependencies) error {
	for _, p := range deps.Catalog.Products {
		fmt.Fprintf(deps.Stdout, "%s %s (%d docs)\n    %s\n", p.Icon, p.Name, len(p.Docs), p.Description)
	}
	return nil
}
