package profile_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/config"
	"github.com/genzsoft/ant2025-storefront-backend/middleware"
	"github.com/genzsoft/ant2025-storefront-backend/models"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Description Applies partial profile edits. With multipart form data an avatar image can be uploaded alongside the fields. The cached profile is invalidated so the next read sees the update.
// @Tags User
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest false "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.UserProfile}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /user/profile [patch]
func UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	var req models.UpdateProfileRequest
	isMultipart := c.ContentType() == "multipart/form-data"
	if isMultipart {
		bindMultipartFields(c, &req)
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.DivisionName != nil {
		updates["division_name"] = *req.DivisionName
	}
	if req.DistrictName != nil {
		updates["district_name"] = *req.DistrictName
	}
	if req.UpazilaName != nil {
		updates["upazila_name"] = *req.UpazilaName
	}

	if isMultipart {
		if url, uploaded := uploadAvatarIfPresent(c, userID); uploaded {
			updates["user_img"] = url
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nothing to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.StoreGorm.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}
	if err := config.StoreGorm.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update profile"))
		return
	}

	// Drop the cached profile so the next read reflects this update.
	services.GetProfileManager().For(userID).Invalidate()

	if err := config.StoreGorm.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch updated profile"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile updated successfully", user.ToProfile()))
}

func bindMultipartFields(c *gin.Context, req *models.UpdateProfileRequest) {
	assign := func(field string) *string {
		if v, ok := c.GetPostForm(field); ok {
			return &v
		}
		return nil
	}
	req.Name = assign("name")
	req.Email = assign("email")
	req.DivisionName = assign("division_name")
	req.DistrictName = assign("district_name")
	req.UpazilaName = assign("upazila_name")
}

// uploadAvatarIfPresent pushes an attached avatar file to Cloudinary.
// Missing file or unconfigured Cloudinary both mean "no avatar change".
func uploadAvatarIfPresent(c *gin.Context, userID string) (string, bool) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return "", false
	}
	svc := services.GetCloudinaryService()
	if svc == nil {
		return "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", false
	}
	defer file.Close()

	url, err := svc.UploadAvatar(c.Request.Context(), file, userID)
	if err != nil {
		return "", false
	}
	return url, true
}
