package shop_controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/genzsoft/ant2025-storefront-backend/config"
	"github.com/genzsoft/ant2025-storefront-backend/models"
)

// GetShopByID godoc
// @Summary Get shop details
// @Description Get the full shop record by numeric ID
// @Tags Store - Shops
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} models.ApiResponse{data=models.Shop}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/shops/{id} [get]
func GetShopByID(c *gin.Context) {
	shopID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid shop ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var shop models.Shop
	err = config.StoreGorm.WithContext(ctx).First(&shop, "id = ?", shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Shop not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch shop"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shop fetched successfully", shop))
}
