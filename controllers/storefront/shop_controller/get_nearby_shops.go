package shop_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

// nearbyShopCount is how many cards the home page strip shows.
const nearbyShopCount = 4

// GetNearbyShops godoc
// @Summary Get nearby shops
// @Description Returns the first few shop cards for the home page strip
// @Tags Store - Shops
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CatalogShop}
// @Router /store/shops/nearby [get]
func GetNearbyShops(c *gin.Context) {
	shops := services.GetCatalog().Shops()
	if len(shops) > nearbyShopCount {
		shops = shops[:nearbyShopCount]
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Nearby shops fetched successfully", shops))
}
