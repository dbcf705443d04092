package analysis

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/disasterdash/internal/config"
	"github.com/xyz-asif/disasterdash/internal/features/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config, authRepo *auth.Repository) {
	repo := NewRepository(db)
	service := NewService(repo, NewStaticScorer())
	handler := NewHandler(service, repo, cfg.AIServiceKey != "")

	group := router.Group("/ai")
	{
		group.POST("/analyze", auth.RequireSession(authRepo), auth.RequireAdmin(authRepo), handler.Trigger)
		group.GET("/updates", handler.ListUpdates)
	}
}
