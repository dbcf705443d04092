package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xyz-asif/disasterdash/internal/pkg/response"
	"github.com/xyz-asif/disasterdash/internal/pkg/validator"
)

type Handler struct {
	repo      *Repository
	exchanger Exchanger
}

func NewHandler(repo *Repository, exchanger Exchanger) *Handler {
	return &Handler{
		repo:      repo,
		exchanger: exchanger,
	}
}

// ProcessSession godoc
// @Summary Exchange an external session id for an app session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SessionRequest true "External session id"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /auth/session [post]
func (h *Handler) ProcessSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	profile, err := h.exchanger.Exchange(c.Request.Context(), req.SessionID)
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			response.Unauthorized(c, "Invalid session", "INVALID_SESSION")
			return
		}
		log.Printf("Session exchange error: %v", err)
		response.InternalServerError(c, "Session processing failed", "SESSION_EXCHANGE_FAILED")
		return
	}

	// An upstream response without a usable email cannot map to a user
	if !validator.IsValidEmail(profile.Email) {
		log.Printf("Session exchange returned invalid email %q", profile.Email)
		response.InternalServerError(c, "Session processing failed", "SESSION_EXCHANGE_FAILED")
		return
	}

	existing, err := h.repo.FindUserByEmail(c.Request.Context(), profile.Email)
	if err != nil {
		log.Printf("User lookup error: %v", err)
		response.InternalServerError(c, "Session processing failed", "DATABASE_ERROR")
		return
	}

	var userID string
	if existing == nil {
		now := time.Now().UTC()
		user := &User{
			ID:         uuid.NewString(),
			Email:      profile.Email,
			Name:       profile.Name,
			Picture:    profile.Picture,
			Role:       "user",
			CreatedAt:  now,
			LastSeenAt: now,
		}
		if err := h.repo.CreateUser(c.Request.Context(), user); err != nil {
			log.Printf("User create error: %v", err)
			response.InternalServerError(c, "Session processing failed", "DATABASE_ERROR")
			return
		}
		userID = user.ID
	} else {
		userID = existing.ID
		if err := h.repo.TouchLastSeen(c.Request.Context(), userID); err != nil {
			log.Printf("Last seen update error: %v", err)
			response.InternalServerError(c, "Session processing failed", "DATABASE_ERROR")
			return
		}
	}

	// A new token on every login; existing sessions stay valid until they
	// age out or the user logs out everywhere.
	session := &Session{
		SessionToken: "session_" + uuid.NewString(),
		UserID:       userID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.repo.CreateSession(c.Request.Context(), session); err != nil {
		log.Printf("Session create error: %v", err)
		response.InternalServerError(c, "Session processing failed", "DATABASE_ERROR")
		return
	}

	user, err := h.repo.FindUserByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		log.Printf("User refetch error: %v", err)
		response.InternalServerError(c, "Session processing failed", "DATABASE_ERROR")
		return
	}

	response.Success(c, SessionResponse{
		SessionToken: session.SessionToken,
		User:         user,
	})
}

// Logout godoc
// @Summary Invalidate all sessions for the caller
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/logout [delete]
func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.repo.DeleteSessionsForUser(c.Request.Context(), userID); err != nil {
		response.InternalServerError(c, "Logout failed", "DATABASE_ERROR")
		return
	}

	response.Message(c, "Logged out successfully")
}

// Me godoc
// @Summary Get the caller's user record
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} User
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.repo.FindUserByID(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "User lookup failed", "DATABASE_ERROR")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}

	response.Success(c, user)
}
