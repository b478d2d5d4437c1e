package utils

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/genzsoft/ant2025-storefront-backend/config"
)

// LogLoginEvent records a login event (password or OTP) to the database
func LogLoginEvent(c *gin.Context, userID uuid.UUID, method string) error {
	ctx := c.Request.Context()

	ipAddress := c.ClientIP()
	userAgent := c.GetHeader("User-Agent")
	deviceType := parseDeviceType(userAgent)

	query := `
		INSERT INTO login_events (
			id, user_id, logged_in_at, method, ip_address, user_agent, device_type
		) VALUES ($1, $2, NOW(), $3, $4, $5, $6)
	`

	_, err := config.StoreDB.Exec(ctx, query,
		uuid.New().String(),
		userID.String(),
		method,
		ipAddress,
		userAgent,
		deviceType,
	)
	if err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return err
	}

	return nil
}

// parseDeviceType determines if the request is from mobile, tablet, or desktop
func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") {
		return "mobile"
	}
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	return "desktop"
}
