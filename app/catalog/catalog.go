// Package catalog holds the static product reference data. The catalog is
// built once at startup and only ever read; carts copy product fields out
// of it rather than pointing back into it.
package catalog

import (
	"strings"

	"github.com/shashiranjanraj/stylestore/app/models"
	"github.com/shashiranjanraj/stylestore/pkg/collection"
)

type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

// New builds a catalog over the given products, preserving their order.
func New(products []models.Product) *Catalog {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Catalog{
		products: append([]models.Product(nil), products...),
		byID:     byID,
	}
}

// Default returns the catalog seeded with the stock StyleStore products.
func Default() *Catalog {
	return New(seedProducts)
}

// All returns every product in catalog order.
func (c *Catalog) All() []models.Product {
	return append([]models.Product(nil), c.products...)
}

// ByID looks up a product; ok is false for unknown identifiers, which are
// a normal navigation case (stale links), never an error.
func (c *Catalog) ByID(id int) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Featured returns the products flagged for the home page, catalog order
// preserved.
func (c *Catalog) Featured() []models.Product {
	return collection.Filter(c.products, func(p models.Product) bool {
		return p.Featured
	})
}

// ByCategory filters by exact category label.
func (c *Catalog) ByCategory(category string) []models.Product {
	return collection.Filter(c.products, func(p models.Product) bool {
		return p.Category == category
	})
}

// Categories lists the distinct category labels in first-seen order.
func (c *Catalog) Categories() []string {
	return collection.Unique(collection.Map(c.products, func(p models.Product) string {
		return p.Category
	}))
}

// Search matches the query case-insensitively against name and description.
func (c *Catalog) Search(query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}
	return collection.Filter(c.products, func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	})
}

// Len reports the number of products.
func (c *Catalog) Len() int { return len(c.products) }
