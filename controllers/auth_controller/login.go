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
	"github.com/genzsoft/ant2025-storefront-backend/utils"
)

// Login godoc
// @Summary Log in with phone and password
// @Description Authenticates a user and returns a session token, also set as an HttpOnly cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.StoreGorm.WithContext(ctx).First(&user, "phone = ?", req.Phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid phone or password"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	if user.Status != "active" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Account is disabled"))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid phone or password"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Phone, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Login failed"))
		return
	}

	if err := utils.LogLoginEvent(c, user.ID, "password"); err != nil {
		log.Printf("⚠️ Failed to record login event: %v", err)
	}

	setAuthCookie(c, token)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
