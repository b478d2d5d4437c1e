package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/genzsoft/ant2025-storefront-backend/config"
	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/services"
	"github.com/genzsoft/ant2025-storefront-backend/utils"
)

// VerifyOTP godoc
// @Summary Verify a one-time code and log in
// @Description Exchanges a valid code for a session token. First-time phones get a buyer account provisioned on the spot.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.OTPVerifyRequest true "Phone and code"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /auth/otp/verify [post]
func VerifyOTP(c *gin.Context) {
	var req models.OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	err := services.VerifyOTP(req.Phone, req.Code)
	if errors.Is(err, services.ErrOTPInvalid) || errors.Is(err, services.ErrOTPTooMany) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Verification failed"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err = config.StoreGorm.WithContext(ctx).First(&user, "phone = ?", req.Phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = provisionBuyer(req.Phone)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Verification failed"))
		return
	}

	if !user.PhoneVerified {
		if err := config.StoreGorm.WithContext(ctx).Model(&user).Update("phone_verified", true).Error; err == nil {
			user.PhoneVerified = true
		}
	}

	token, err := utils.GenerateJWT(user.ID, user.Phone, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Verification failed"))
		return
	}

	if err := utils.LogLoginEvent(c, user.ID, "otp"); err != nil {
		log.Printf("⚠️ Failed to record login event: %v", err)
	}

	setAuthCookie(c, token)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}

// provisionBuyer creates a minimal buyer account for a phone that
// verified a code but has no account yet. The random password forces a
// reset before password login can work.
func provisionBuyer(phone string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(generateReferralCode()), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	suffix := phone
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	user := models.User{
		Name:          "User " + suffix,
		Phone:         phone,
		PasswordHash:  string(hash),
		Role:          models.RoleBuyer,
		Status:        "active",
		PhoneVerified: true,
		ReferralCode:  generateReferralCode(),
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}
