package dashboard

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/disasterdash/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Data godoc
// @Summary Combined dashboard payload
// @Tags dashboard
// @Produce json
// @Success 200 {object} Payload
// @Failure 500 {object} response.ErrorResponse
// @Router /dashboard/data [get]
func (h *Handler) Data(c *gin.Context) {
	payload, err := h.service.Build(c.Request.Context())
	if err != nil {
		log.Printf("Dashboard build error: %v", err)
		response.InternalServerError(c, "Failed to build dashboard data", "DATABASE_ERROR")
		return
	}

	response.Success(c, payload)
}
