package profile_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/genzsoft/ant2025-storefront-backend/middleware"
	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Description Returns the profile document, served from the cache when warm. Concurrent requests share a single backing fetch. A failed fetch leaves any previously cached copy intact.
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.UserProfile}
// @Failure 401 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /user/profile [get]
func GetProfile(c *gin.Context) {
	session, ok := sessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	cache := services.GetProfileManager().For(session.UserID.String())
	profile := cache.Ensure(c.Request.Context(), session)
	if profile == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Profile temporarily unavailable"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile fetched successfully", profile))
}

// sessionFromContext assembles the session object the profile cache
// consumes from what the auth middleware stored.
func sessionFromContext(c *gin.Context) (*models.SessionUser, bool) {
	idStr, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return nil, false
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, false
	}
	token, _ := middleware.GetAccessTokenFromContext(c)
	role, _ := middleware.GetUserRoleFromContext(c)
	return &models.SessionUser{UserID: userID, AccessToken: token, Role: role}, true
}
