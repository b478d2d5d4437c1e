package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genzsoft/ant2025-storefront-backend/models"
)

// ShopOwnerMiddleware restricts a route group to shop_owner accounts.
// Must run after AuthMiddleware.
func ShopOwnerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
			c.Abort()
			return
		}

		if role != models.RoleShopOwner {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Shop owner access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
