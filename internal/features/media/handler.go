package media

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/disasterdash/internal/pkg/cloudinary"
	"github.com/xyz-asif/disasterdash/internal/pkg/response"
)

type Handler struct {
	cloudinary *cloudinary.Service
}

func NewHandler(cld *cloudinary.Service) *Handler {
	return &Handler{cloudinary: cld}
}

// Upload godoc
// @Summary Upload a report photo
// @Description Uploads an image and returns the URL to use as a report's image_url
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image to upload"
// @Success 200 {object} cloudinary.UploadResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /media/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	if h.cloudinary == nil {
		response.ServiceUnavailable(c, "Media storage not configured", "MEDIA_NOT_CONFIGURED")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", "MISSING_FILE")
		return
	}
	defer file.Close()

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	result, err := h.cloudinary.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.InternalServerError(c, "Failed to upload image", "UPLOAD_FAILED")
		return
	}

	response.Success(c, result)
}
