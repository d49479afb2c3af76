package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/stylestore/app/catalog"
	"github.com/shashiranjanraj/stylestore/pkg/response"
)

type CatalogController struct {
	catalog *catalog.Catalog
}

func NewCatalogController(c *catalog.Catalog) *CatalogController {
	return &CatalogController{catalog: c}
}

// Index lists products, optionally narrowed by ?category=, ?search= or
// ?featured=true. Filters compose left to right.
func (c *CatalogController) Index(w http.ResponseWriter, r *http.Request) {
	products := c.catalog.All()

	if q := r.URL.Query().Get("search"); q != "" {
		products = c.catalog.Search(q)
	}
	if category := r.URL.Query().Get("category"); category != "" {
		filtered := products[:0:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	if r.URL.Query().Get("featured") == "true" {
		filtered := products[:0:0]
		for _, p := range products {
			if p.Featured {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	response.Success(w, products)
}

// Show returns a single product. Unknown ids are a normal navigation
// case (stale links), answered with 404 rather than treated as failures.
func (c *CatalogController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w)
		return
	}

	product, ok := c.catalog.ByID(id)
	if !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, product)
}

// Categories lists the distinct category labels.
func (c *CatalogController) Categories(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, c.catalog.Categories())
}
