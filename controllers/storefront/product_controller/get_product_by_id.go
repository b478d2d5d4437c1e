package product_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

// GetProductByID godoc
// @Summary Get a single catalog product
// @Description Get one product from the loaded catalog by numeric ID
// @Tags Store - Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	for _, p := range services.GetCatalog().Products() {
		if p.ID == id {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", p))
			return
		}
	}
	c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
}
