package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/controllers/auth_controller"
	"github.com/genzsoft/ant2025-storefront-backend/middleware"
)

// SetupAuthRoutes registers registration, login, and OTP routes. Auth
// endpoints sit behind a tight rate limit.
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	auth.Use(middleware.RateLimiter(20, time.Minute))
	{
		auth.POST("/register", auth_controller.Register)
		auth.POST("/login", auth_controller.Login)
		auth.POST("/otp/request", auth_controller.RequestOTP)
		auth.POST("/otp/verify", auth_controller.VerifyOTP)

		auth.POST("/logout", middleware.AuthMiddleware(), auth_controller.Logout)
	}
}
