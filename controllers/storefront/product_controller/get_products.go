package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/catalog"
	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

// GetProducts godoc
// @Summary Get storefront products
// @Description Retrieve catalog products with optional search, category, brand, origin, volume, size, and rating filters. Results keep catalog order; the visible parameter reveals a growing prefix of the filtered set.
// @Tags Store - Products
// @Produce json
// @Param q query string false "Search term (matches name or brand)"
// @Param category query string false "Category filter (All Categories clears it)"
// @Param brand query string false "Brand filter (exact)"
// @Param shipped_from query string false "Origin filter (exact)"
// @Param volume query string false "Volume filter (exact)"
// @Param size query string false "Size filter (exact)"
// @Param rating query int false "Exact star rating (1-5)"
// @Param visible query int false "Items to reveal" default(20)
// @Success 200 {object} models.ApiResponse
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	state := parseFilterState(c)
	filtered := catalog.Apply(services.GetCatalog().Products(), state)

	visible := parseVisible(c)
	window := filtered
	if visible < len(filtered) {
		window = filtered[:visible]
	} else {
		visible = len(filtered)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully", gin.H{
		"products": window,
		"total":    len(filtered),
		"visible":  visible,
		"has_more": visible < len(filtered),
	}))
}
