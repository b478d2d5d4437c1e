// @title ant2025 Storefront API
// @version 1.0
// @description Regional marketplace storefront backend
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/genzsoft/ant2025-storefront-backend/config"
	_ "github.com/genzsoft/ant2025-storefront-backend/docs"
	"github.com/genzsoft/ant2025-storefront-backend/routes"
	"github.com/genzsoft/ant2025-storefront-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	// Cloudinary is optional; avatar upload is disabled without it
	if err := services.InitCloudinaryService(); err != nil {
		log.Printf("⚠️ Cloudinary disabled: %v", err)
	}

	// Load the product catalog and wire the profile cache
	services.InitCatalog()
	services.InitProfileCache()
	log.Println("✅ Profile cache initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	routes.SetupStorefrontRoutes(api)
	routes.SetupAuthRoutes(api)
	routes.SetupUserRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	router.Run(":" + port)
}
