package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

// GetProductFilters godoc
// @Summary Get storefront filter options
// @Description Returns the facet option lists (categories, brands, origins, volumes, sizes) derived from the full catalog. The lists never narrow when filters are active.
// @Tags Store - Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=catalog.FacetOptions}
// @Router /store/products/filters [get]
func GetProductFilters(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter options fetched", services.GetCatalog().Facets()))
}
