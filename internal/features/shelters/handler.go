package shelters

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xyz-asif/disasterdash/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// Create godoc
// @Summary Register a shelter
// @Tags shelters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateShelterRequest true "Shelter data"
// @Success 200 {object} Shelter
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /shelters [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateShelterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	shelter := &Shelter{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Location:  req.Location,
		Capacity:  req.Capacity,
		Contact:   req.Contact,
		Type:      req.Type,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.repo.Create(c.Request.Context(), shelter); err != nil {
		response.InternalServerError(c, "Failed to create shelter", "DATABASE_ERROR")
		return
	}

	response.Success(c, shelter)
}

// List godoc
// @Summary List all shelters
// @Tags shelters
// @Produce json
// @Success 200 {array} Shelter
// @Router /shelters [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch shelters", "DATABASE_ERROR")
		return
	}

	response.Success(c, result)
}
