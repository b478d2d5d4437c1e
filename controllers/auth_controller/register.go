package auth_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/genzsoft/ant2025-storefront-backend/config"
	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/utils"
)

// Register godoc
// @Summary Register a new account
// @Description Creates an account with phone and password. Role defaults to buyer; shop owners register with role=shop_owner.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.User
	err := config.StoreGorm.WithContext(ctx).First(&existing, "phone = ?", req.Phone).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An account with this phone already exists"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleBuyer
	}

	user := models.User{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       "active",
		ReferralCode: generateReferralCode(),
	}
	if err := config.StoreGorm.WithContext(ctx).Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Phone, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Account created but login failed, please log in"))
		return
	}

	setAuthCookie(c, token)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
