// Package yaml loads the product documentation catalog from a YAML file.
package yaml

import (
	"os"

	"github.com/devdocs-ai/devdocs"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Products []productFile `yaml:"products"`
}

type productFile struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Icon        string    `yaml:"icon"`
	Description string    `yaml:"description"`
	Docs        []docFile `yaml:"docs"`
}

type docFile struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Slug        string `yaml:"slug"`
	Category    string `yaml:"category"`
	ContentPath string `yaml:"content_path"`
	LastUpdated string `yaml:"last_updated"`
}

// LoadCatalog reads and validates a catalog from the YAML file at path.
// Document order in the file is preserved; it defines navigation and
// context-assembly order.
func LoadCatalog(path string) (*devdocs.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, devdocs.Errorf(devdocs.ENOTFOUND, "catalog file %q not found", path)
		}
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog parses and validates catalog YAML.
func ParseCatalog(data []byte) (*devdocs.Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, devdocs.Errorf(devdocs.EINVALID, "invalid catalog YAML: %s", err)
	}

	catalog := &devdocs.Catalog{}
	for _, p := range file.Products {
		product := &devdocs.Product{
			ID:          p.ID,
			Name:        p.Name,
			Icon:        p.Icon,
			Description: p.Description,
		}
		for _, d := range p.Docs {
			product.Docs = append(product.Docs, &devdocs.Document{
				ID:          d.ID,
				Title:       d.Title,
				Slug:        d.Slug,
				Category:    d.Category,
				ContentPath: d.ContentPath,
				LastUpdated: d.LastUpdated,
			})
		}
		catalog.Products = append(catalog.Products, product)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
