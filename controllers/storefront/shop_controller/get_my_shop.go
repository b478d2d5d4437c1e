package shop_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/genzsoft/ant2025-storefront-backend/config"
	"github.com/genzsoft/ant2025-storefront-backend/middleware"
	"github.com/genzsoft/ant2025-storefront-backend/models"
)

// GetMyShop godoc
// @Summary Get the authenticated owner's shop
// @Description Returns the shop owned by the logged-in shop owner, with its products
// @Tags Store - Shops
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /user/my-shop [get]
func GetMyShop(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var shop models.Shop
	err := config.StoreGorm.WithContext(ctx).First(&shop, "owner_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No shop registered for this account"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch shop"))
		return
	}

	var products []models.ShopProduct
	if err := config.StoreGorm.WithContext(ctx).Where("shop_id = ?", shop.ID).Order("created_at ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch shop products"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shop fetched successfully", gin.H{
		"shop":     shop,
		"products": products,
	}))
}
