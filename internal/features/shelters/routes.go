package shelters

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/disasterdash/internal/features/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, authRepo *auth.Repository) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	group := router.Group("/shelters")
	{
		group.POST("", auth.RequireSession(authRepo), auth.RequireAdmin(authRepo), handler.Create)
		group.GET("", handler.List)
	}
}
