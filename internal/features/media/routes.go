package media

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/disasterdash/internal/config"
	"github.com/xyz-asif/disasterdash/internal/features/auth"
	"github.com/xyz-asif/disasterdash/internal/pkg/cloudinary"
)

func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config, authRepo *auth.Repository) {
	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "disasterdash")
	if err != nil {
		// Uploads answer 503 until credentials are configured
		log.Printf("Cloudinary not configured: %v", err)
	}

	handler := NewHandler(cld)

	router.POST("/media/upload", auth.RequireSession(authRepo), handler.Upload)
}
