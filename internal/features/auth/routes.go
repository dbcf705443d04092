package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/disasterdash/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) *Repository {
	repo := NewRepository(db)
	handler := NewHandler(repo, NewClient(cfg.AuthServiceURL))

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/session", handler.ProcessSession)
		authGroup.DELETE("/logout", RequireSession(repo), handler.Logout)
		authGroup.GET("/me", RequireSession(repo), handler.Me)
	}

	// The session repository backs auth middleware for every other feature
	return repo
}
