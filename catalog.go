package devdocs

// Document represents a single documentation page within a product.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Category    string `json:"category"`
	ContentPath string `json:"contentPath"`
	LastUpdated string `json:"lastUpdated"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.ID == "" {
		return Errorf(EINVALID, "document ID required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.ContentPath == "" {
		return Errorf(EINVALID, "document content path required")
	}
	return nil
}

// Product represents a product whose documentation can be browsed and
// queried. Doc order is significant: it defines navigation order and the
// iteration order used when assembling model context.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Description string      `json:"description"`
	Docs        []*Document `json:"docs"`
}

// Validate returns an error if the product contains invalid fields.
func (p *Product) Validate() error {
	if p.ID == "" {
		return Errorf(EINVALID, "product ID required")
	}
	if p.Name == "" {
		return Errorf(EINVALID, "product name required")
	}
	for _, d := range p.Docs {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Catalog is the immutable registry of products and their documents.
// It is constructed once at startup and explicitly injected into every
// component that needs it; it is never mutated afterwards.
type Catalog struct {
	Products []*Product `json:"products"`
}

// Validate returns an error if any product in the catalog is invalid.
func (c *Catalog) Validate() error {
	for _, p := range c.Products {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ProductNames returns the names of all products in catalog order.
func (c *Catalog) ProductNames() []string {
	names := make([]string, 0, len(c.Products))
	for _, p := range c.Products {
		names = append(names, p.Name)
	}
	return names
}

// DocCount returns the total number of documents across all products.
func (c *Catalog) DocCount() int {
	var n int
	for _, p := range c.Products {
		n += len(p.Docs)
	}
	return n
}

// FindProduct returns the product with the given ID.
// Returns ENOTFOUND if no such product exists.
func (c *Catalog) FindProduct(id string) (*Product, error) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "product %q not found", id)
}

// FindDoc returns the document with the given slug within a product.
// Returns ENOTFOUND if the product or document does not exist.
func (c *Catalog) FindDoc(productID, slug string) (*Document, error) {
	p, err := c.FindProduct(productID)
	if err != nil {
		return nil, err
	}
	for _, d := range p.Docs {
		if d.Slug == slug {
			return d, nil
		}
	}
	return nil, Errorf(ENOTFOUND, "document %q not found in product %q", slug, productID)
}
