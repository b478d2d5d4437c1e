package wallet_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/genzsoft/ant2025-storefront-backend/config"
	"github.com/genzsoft/ant2025-storefront-backend/middleware"
	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

// Recharge godoc
// @Summary Recharge the wallet
// @Description Records a cash-in through a mobile banking provider and credits the balance. The transaction row and the balance update commit together.
// @Tags User - Wallet
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.RechargeRequest true "Recharge data"
// @Success 200 {object} models.ApiResponse{data=models.WalletTransaction}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/wallet/recharge [post]
func Recharge(c *gin.Context) {
	userIDStr, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid session"))
		return
	}

	var req models.RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	tx := models.WalletTransaction{
		UserID:   userID,
		Type:     "recharge",
		Provider: req.Provider,
		Amount:   req.Amount,
		Status:   models.TxCompleted,
		TrxID:    req.TrxID,
	}

	err = config.StoreGorm.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		if err := db.Create(&tx).Error; err != nil {
			return err
		}
		return db.Model(&models.User{}).
			Where("id = ?", userID).
			Update("balance", gorm.Expr("balance + ?", req.Amount)).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to process recharge"))
		return
	}

	// Balance lives on the profile document, so the cached copy is stale.
	services.GetProfileManager().For(userIDStr).Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wallet recharged successfully", tx))
}
