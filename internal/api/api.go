package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devhive/backend/config"
	"github.com/devhive/backend/internal/database"
	"github.com/devhive/backend/internal/middleware"
	"github.com/devhive/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "DevHive API is running",
		"version": "v1.0.0",
	})
}

// SetupAPI wires services, middleware and routes onto the router
func SetupAPI(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck)
	router.GET("/api/health", HealthCheck)

	// Initialize Redis for rate limiting; routes stay usable without it
	var authLimiter *middleware.RateLimiter
	if redisClient, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
	} else {
		authLimiter = middleware.NewAuthRateLimiter(redisClient)
	}

	// Initialize services
	authService := service.NewAuthService(db, cfg.JWTSecret)
	devService := service.NewDevService(db)

	// Avatar storage; uploads are disabled when S3 is not configured
	var avatarHandler *AvatarHandler
	if s3cfg, err := config.NewS3Config(context.Background(), cfg); err != nil {
		log.Printf("Warning: Failed to configure S3, avatar uploads disabled: %v", err)
	} else {
		avatarHandler = NewAvatarHandler(service.NewAvatarService(db, s3cfg.Client, s3cfg.BucketName))
	}

	authHandler := NewAuthHandler(authService)
	devHandler := NewDevHandler(devService)

	RegisterRoutes(router.Group("/api"), authHandler, devHandler, avatarHandler, authService, authLimiter)
}

// RegisterRoutes registers the /devs routes on the given group
func RegisterRoutes(
	v *gin.RouterGroup,
	authHandler *AuthHandler,
	devHandler *DevHandler,
	avatarHandler *AvatarHandler,
	validator middleware.TokenValidator,
	authLimiter *middleware.RateLimiter,
) {
	devs := v.Group("/devs")
	{
		devs.GET("", devHandler.List)
		devs.GET("/:id", devHandler.Get)
		devs.POST("/search", devHandler.Search)
		devs.POST("/signup", authLimiter.Middleware(), authHandler.Signup)
		devs.POST("/signin", authLimiter.Middleware(), authHandler.Login)
		devs.POST("/verify", authHandler.Verify)
		devs.POST("/refresh", authHandler.Refresh)
	}

	protected := devs.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		protected.PUT("/update", devHandler.Update)
		protected.DELETE("/:id", devHandler.Delete)
		if avatarHandler != nil {
			protected.POST("/avatar", avatarHandler.Upload)
		}
	}
}
