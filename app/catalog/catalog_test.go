package catalog_test

import (
	"testing"

	"github.com/shashiranjanraj/stylestore/app/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	c := catalog.Default()

	p, ok := c.ByID(3)
	require.True(t, ok)
	assert.Equal(t, "Minimalist Ceramic Watch", p.Name)
	assert.Equal(t, 159.99, p.Price)
}

func TestByIDUnknown(t *testing.T) {
	c := catalog.Default()

	_, ok := c.ByID(999)
	assert.False(t, ok, "unknown id is a normal navigation case, not an error")
}

func TestFeaturedPreservesOrder(t *testing.T) {
	c := catalog.Default()

	featured := c.Featured()
	require.NotEmpty(t, featured)
	for i := 1; i < len(featured); i++ {
		assert.Less(t, featured[i-1].ID, featured[i].ID)
	}
}

func TestByCategory(t *testing.T) {
	c := catalog.Default()

	electronics := c.ByCategory("Electronics")
	require.Len(t, electronics, 2)
	assert.Equal(t, 1, electronics[0].ID)
	assert.Equal(t, 5, electronics[1].ID)

	assert.Empty(t, c.ByCategory("Garden"))
}

func TestCategoriesDistinctFirstSeenOrder(t *testing.T) {
	c := catalog.Default()

	assert.Equal(t,
		[]string{"Electronics", "Clothing", "Accessories", "Beauty", "Home"},
		c.Categories(),
	)
}

func TestSearch(t *testing.T) {
	c := catalog.Default()

	results := c.Search("coffee")
	require.Len(t, results, 1)
	assert.Equal(t, "Artisanal Coffee Maker", results[0].Name)

	// Empty query returns the whole catalog.
	assert.Len(t, c.Search("  "), c.Len())

	assert.Empty(t, c.Search("snowboard"))
}
