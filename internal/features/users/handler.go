package users

import (
	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/disasterdash/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} auth.User
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch users", "DATABASE_ERROR")
		return
	}

	response.Success(c, result)
}
