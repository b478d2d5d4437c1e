package shop_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

// GetShops godoc
// @Summary Get shop discovery cards
// @Description Returns all shop cards from the loaded catalog in fetch order
// @Tags Store - Shops
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CatalogShop}
// @Router /store/shops [get]
func GetShops(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shops fetched successfully", services.GetCatalog().Shops()))
}
