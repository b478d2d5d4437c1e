package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genzsoft/ant2025-storefront-backend/models"
)

func TestDeriveFacetsDistinctNonEmptySorted(t *testing.T) {
	products := []models.Product{
		{ID: 1, Brand: "Zebra", ShippedFrom: "Dhaka", Volume: "500ml", Size: "S"},
		{ID: 2, Brand: "Acme", ShippedFrom: "Ctg", Volume: "1L", Size: "M"},
		{ID: 3, Brand: "Zebra", ShippedFrom: "Dhaka", Volume: "", Size: ""},
		{ID: 4, Brand: "Mita", ShippedFrom: "", Volume: "500ml", Size: "S"},
	}

	facets := DeriveFacets(products)

	assert.Equal(t, []string{"Acme", "Mita", "Zebra"}, facets.Brands)
	assert.Equal(t, []string{"Ctg", "Dhaka"}, facets.ShippedFrom)
	assert.Equal(t, []string{"1L", "500ml"}, facets.Volumes)
	assert.Equal(t, []string{"M", "S"}, facets.Sizes)
	assert.Equal(t, []string{AllCategories, "Acme", "Mita", "Zebra"}, facets.Categories)
}

func TestDeriveFacetsIgnoresActiveFilters(t *testing.T) {
	products := []models.Product{
		{ID: 1, Brand: "Acme", ShippedFrom: "Dhaka"},
		{ID: 2, Brand: "Zebra", ShippedFrom: "Ctg"},
	}

	// Option lists come from the full collection; a narrowed view keeps
	// every candidate value available.
	v := NewView(products)
	v.ToggleBrand("Acme")
	facets := DeriveFacets(products)
	assert.Equal(t, []string{"Acme", "Zebra"}, facets.Brands)
	assert.Equal(t, []string{"Ctg", "Dhaka"}, facets.ShippedFrom)
}

func TestDeriveFacetsEmptyCollection(t *testing.T) {
	facets := DeriveFacets(nil)

	assert.Equal(t, []string{AllCategories}, facets.Categories)
	assert.Empty(t, facets.Brands)
	assert.Empty(t, facets.ShippedFrom)
	assert.Empty(t, facets.Volumes)
	assert.Empty(t, facets.Sizes)
}
