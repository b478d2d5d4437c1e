package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/middleware"
	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie and drops the cached profile and session data for the user in one pass.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		services.GetProfileManager().ClearSession(userID)
	}

	clearAuthCookie(c)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
