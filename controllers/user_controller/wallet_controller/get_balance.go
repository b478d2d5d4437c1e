package wallet_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/config"
	"github.com/genzsoft/ant2025-storefront-backend/middleware"
	"github.com/genzsoft/ant2025-storefront-backend/models"
)

// GetBalance godoc
// @Summary Get wallet balance
// @Description Returns the authenticated user's current wallet balance
// @Tags User - Wallet
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.WalletBalance}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/wallet/balance [get]
func GetBalance(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.StoreGorm.WithContext(ctx).Select("balance").First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch balance"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Balance fetched successfully", models.WalletBalance{
		Balance:  user.Balance,
		Currency: "BDT",
	}))
}
