package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

// RequestOTP godoc
// @Summary Request a one-time login code
// @Description Sends a 6-digit code to the given phone. Codes expire after 5 minutes and re-sending is throttled to once a minute.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.OTPRequest true "Phone number"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /auth/otp/request [post]
func RequestOTP(c *gin.Context) {
	var req models.OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	code, err := services.IssueOTP(req.Phone)
	if errors.Is(err, services.ErrOTPThrottled) {
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, err.Error()))
		return
	}
	if err != nil {
		log.Printf("❌ Failed to issue OTP for %s: %v", req.Phone, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send code"))
		return
	}

	if err := services.SendOTPSMS(req.Phone, code); err != nil {
		log.Printf("❌ Failed to send OTP SMS to %s: %v", req.Phone, err)
		// Undelivered code, lift the resend throttle so a retry works
		services.RevokeOTP(req.Phone)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send code"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Verification code sent", nil))
}
