package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/disasterdash/internal/config"
	"github.com/xyz-asif/disasterdash/internal/features/analysis"
	"github.com/xyz-asif/disasterdash/internal/features/auth"
	"github.com/xyz-asif/disasterdash/internal/features/dashboard"
	"github.com/xyz-asif/disasterdash/internal/features/media"
	"github.com/xyz-asif/disasterdash/internal/features/reports"
	"github.com/xyz-asif/disasterdash/internal/features/shelters"
	"github.com/xyz-asif/disasterdash/internal/features/users"
	"github.com/xyz-asif/disasterdash/internal/pkg/response"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	// The deployed frontend expects everything under /api
	api := router.Group("/api")

	api.GET("/", func(c *gin.Context) {
		response.Message(c, "DisasterDash API v1.0")
	})
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// auth owns the session repository that backs every protected route
	authRepo := auth.RegisterRoutes(api, db, cfg)

	users.RegisterRoutes(api, db, authRepo)
	reports.RegisterRoutes(api, db, authRepo)
	shelters.RegisterRoutes(api, db, authRepo)
	analysis.RegisterRoutes(api, db, cfg, authRepo)
	dashboard.RegisterRoutes(api, db)
	media.RegisterRoutes(api, cfg, authRepo)
}
