package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/controllers/storefront/product_controller"
	"github.com/genzsoft/ant2025-storefront-backend/controllers/storefront/shop_controller"
	"github.com/genzsoft/ant2025-storefront-backend/middleware"
)

// SetupStorefrontRoutes registers the public catalog and shop routes
// behind a loose rate limit.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")
	store.Use(middleware.RateLimiter(120, time.Minute))

	products := store.Group("/products")
	{
		products.GET("", product_controller.GetProducts)
		products.GET("/filters", product_controller.GetProductFilters)
		products.GET("/:id", product_controller.GetProductByID)
	}

	shops := store.Group("/shops")
	{
		shops.GET("", shop_controller.GetShops)
		shops.GET("/nearby", shop_controller.GetNearbyShops)
		shops.GET("/:id", shop_controller.GetShopByID)
		shops.GET("/:id/products", shop_controller.GetShopProducts)
	}
}
