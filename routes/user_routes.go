package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/controllers/storefront/shop_controller"
	"github.com/genzsoft/ant2025-storefront-backend/controllers/user_controller/profile_controller"
	"github.com/genzsoft/ant2025-storefront-backend/controllers/user_controller/wallet_controller"
	"github.com/genzsoft/ant2025-storefront-backend/middleware"
)

// SetupUserRoutes registers the authenticated profile and wallet routes.
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/me", profile_controller.GetMe)
		user.GET("/profile", profile_controller.GetProfile)
		user.PATCH("/profile", profile_controller.UpdateProfile)

		wallet := user.Group("/wallet")
		{
			wallet.GET("/balance", wallet_controller.GetBalance)
			wallet.POST("/recharge", wallet_controller.Recharge)
			wallet.GET("/transactions", wallet_controller.GetTransactions)
		}

		// Owner-only shop management
		user.GET("/my-shop", middleware.ShopOwnerMiddleware(), shop_controller.GetMyShop)
	}
}
