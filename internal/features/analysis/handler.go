package analysis

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/disasterdash/internal/pkg/response"
)

type Handler struct {
	service      *Service
	repo         *Repository
	aiConfigured bool
}

func NewHandler(service *Service, repo *Repository, aiConfigured bool) *Handler {
	return &Handler{
		service:      service,
		repo:         repo,
		aiConfigured: aiConfigured,
	}
}

// Trigger godoc
// @Summary Trigger analysis of recent reports
// @Tags ai
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Result
// @Failure 403 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /ai/analyze [post]
func (h *Handler) Trigger(c *gin.Context) {
	if !h.aiConfigured {
		response.InternalServerError(c, "AI service not configured", "AI_NOT_CONFIGURED")
		return
	}

	result, err := h.service.Run(c.Request.Context())
	if err != nil {
		log.Printf("AI analysis error: %v", err)
		response.InternalServerError(c, "AI analysis failed: "+err.Error(), "ANALYSIS_FAILED")
		return
	}

	response.Success(c, result)
}

// ListUpdates godoc
// @Summary List analysis updates, newest first
// @Tags ai
// @Produce json
// @Param region query string false "Filter by region (city|country|world)"
// @Param limit query int false "Max updates to return (default 50)"
// @Success 200 {array} AIUpdate
// @Router /ai/updates [get]
func (h *Handler) ListUpdates(c *gin.Context) {
	limit := int64(50)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 && parsed <= 50 {
			limit = parsed
		}
	}

	result, err := h.repo.ListUpdates(c.Request.Context(), c.Query("region"), limit)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch AI updates", "DATABASE_ERROR")
		return
	}

	response.Success(c, result)
}
