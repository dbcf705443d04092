package reports

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xyz-asif/disasterdash/internal/pkg/response"
	apperrors "github.com/xyz-asif/disasterdash/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// Store is the persistence surface the handler needs. Satisfied by
// *Repository.
type Store interface {
	Create(ctx context.Context, report *Report) error
	List(ctx context.Context, city, status string) ([]Report, error)
	GetByID(ctx context.Context, id string) (*Report, error)
	Update(ctx context.Context, id string, updates bson.M) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Create godoc
// @Summary Submit an incident report
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReportRequest true "Report data"
// @Success 200 {object} Report
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /reports [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateReport(&req); err != nil {
		response.BadRequest(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	now := time.Now().UTC()
	report := &Report{
		ID:          uuid.NewString(),
		ReporterID:  c.GetString("userID"),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
		ImageURL:    req.ImageURL,
		Severity:    req.Severity,
		Status:      "pending",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.store.Create(c.Request.Context(), report); err != nil {
		response.InternalServerError(c, "Failed to create report", "DATABASE_ERROR")
		return
	}

	response.Success(c, report)
}

// List godoc
// @Summary List reports, newest first
// @Tags reports
// @Produce json
// @Param city query string false "Exact city match"
// @Param status query string false "Exact status match"
// @Success 200 {array} Report
// @Router /reports [get]
func (h *Handler) List(c *gin.Context) {
	result, err := h.store.List(c.Request.Context(), c.Query("city"), c.Query("status"))
	if err != nil {
		response.InternalServerError(c, "Failed to fetch reports", "DATABASE_ERROR")
		return
	}

	response.Success(c, result)
}

// Get godoc
// @Summary Fetch a single report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} Report
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	report, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch report", "DATABASE_ERROR")
		return
	}

	response.Success(c, report)
}

// Update godoc
// @Summary Update report status and AI fields
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Param request body UpdateReportRequest true "Fields to update"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /reports/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	// Only fields present in the request enter the update document
	updates := bson.M{}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.AISeverityScore != nil {
		updates["ai_severity_score"] = *req.AISeverityScore
	}
	if req.AIAutoFlag != nil {
		updates["ai_auto_flag"] = *req.AIAutoFlag
	}

	if err := h.store.Update(c.Request.Context(), c.Param("id"), updates); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Report not found")
			return
		}
		response.InternalServerError(c, "Failed to update report", "DATABASE_ERROR")
		return
	}

	response.Message(c, "Report updated successfully")
}
