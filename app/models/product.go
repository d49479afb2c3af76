package models

// Product is static reference data from the catalog, immutable at runtime.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
	Featured    bool    `json:"featured"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}
