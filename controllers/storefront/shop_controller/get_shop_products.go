package shop_controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/config"
	"github.com/genzsoft/ant2025-storefront-backend/models"
)

// GetShopProducts godoc
// @Summary Get a shop's products
// @Description Retrieve one shop's listed products with optional search and category filter. Search matches product name or category.
// @Tags Store - Shops
// @Produce json
// @Param id path int true "Shop ID"
// @Param q query string false "Search query (name or category)"
// @Param category query string false "Category filter (exact)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.ShopProduct}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/shops/{id}/products [get]
func GetShopProducts(c *gin.Context) {
	shopID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid shop ID"))
		return
	}

	page, limit := parsePagination(c)
	searchQuery := c.Query("q")
	category := c.Query("category")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.StoreGorm.WithContext(ctx).Model(&models.ShopProduct{}).Where("shop_id = ?", shopID)
	if searchQuery != "" {
		query = query.Where("name ILIKE ? OR category ILIKE ?", "%"+searchQuery+"%", "%"+searchQuery+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch shop products"))
		return
	}

	var products []models.ShopProduct
	err = query.
		Order("created_at ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch shop products"))
		return
	}

	total := int(totalCount)
	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Shop products fetched successfully",
		products,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	))
}
