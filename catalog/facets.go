package catalog

import (
	"sort"

	"github.com/genzsoft/ant2025-storefront-backend/models"
)

// AllCategories is the sentinel meaning "no category filter".
const AllCategories = "All Categories"

// FacetOptions are the candidate values per filter dimension, always
// derived from the entire unfiltered collection. Option lists do not
// narrow as filters are applied.
type FacetOptions struct {
	Categories  []string `json:"categories"`
	Brands      []string `json:"brands"`
	ShippedFrom []string `json:"shipped_from"`
	Volumes     []string `json:"volumes"`
	Sizes       []string `json:"sizes"`
}

// DeriveFacets collects the distinct non-empty values of each facet
// dimension across all products, sorted ascending. The category list is
// the sentinel followed by the sorted brand values.
func DeriveFacets(products []models.Product) FacetOptions {
	brands := distinctSorted(products, func(p models.Product) string { return p.Brand })
	return FacetOptions{
		Categories:  append([]string{AllCategories}, brands...),
		Brands:      brands,
		ShippedFrom: distinctSorted(products, func(p models.Product) string { return p.ShippedFrom }),
		Volumes:     distinctSorted(products, func(p models.Product) string { return p.Volume }),
		Sizes:       distinctSorted(products, func(p models.Product) string { return p.Size }),
	}
}

func distinctSorted(products []models.Product, field func(models.Product) string) []string {
	seen := make(map[string]struct{})
	values := []string{}
	for _, p := range products {
		v := field(p)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
