package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/catalog"
)

// parseFilterState maps query params onto the filter engine's input.
// Unknown or malformed values fall back to "no filter".
func parseFilterState(c *gin.Context) catalog.FilterState {
	state := catalog.FilterState{
		SearchTerm:       c.Query("q"),
		SelectedCategory: c.DefaultQuery("category", catalog.AllCategories),
		Brand:            c.Query("brand"),
		ShippedFrom:      c.Query("shipped_from"),
		Volume:           c.Query("volume"),
		Size:             c.Query("size"),
	}
	if rating, err := strconv.Atoi(c.Query("rating")); err == nil && rating >= 1 && rating <= 5 {
		state.Rating = rating
	}
	return state
}

// parseVisible reads the reveal window size. It always comes back as a
// positive multiple of one page so a hand-typed value cannot land the
// client between pages.
func parseVisible(c *gin.Context) int {
	visible, err := strconv.Atoi(c.DefaultQuery("visible", strconv.Itoa(catalog.PageSize)))
	if err != nil || visible < catalog.PageSize {
		return catalog.PageSize
	}
	if rem := visible % catalog.PageSize; rem != 0 {
		visible += catalog.PageSize - rem
	}
	return visible
}
