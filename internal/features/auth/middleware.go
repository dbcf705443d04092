package auth

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/disasterdash/internal/pkg/response"
)

// SessionFinder resolves a bearer token to a stored session. Satisfied by
// *Repository.
type SessionFinder interface {
	FindSessionByToken(ctx context.Context, token string) (*Session, error)
}

// UserFinder resolves a user id to a user record. Satisfied by *Repository.
type UserFinder interface {
	FindUserByID(ctx context.Context, userID string) (*User, error)
}

// RequireSession validates the bearer token against stored sessions and puts
// the resolved user id into the context as "userID".
func RequireSession(sessions SessionFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "No authorization token provided", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "Invalid authorization format", "INVALID_AUTH_FORMAT")
			c.Abort()
			return
		}

		session, err := sessions.FindSessionByToken(c.Request.Context(), parts[1])
		if err != nil {
			response.InternalServerError(c, "Session lookup failed", "DATABASE_ERROR")
			c.Abort()
			return
		}
		if session == nil {
			response.Unauthorized(c, "Invalid session token", "INVALID_TOKEN")
			c.Abort()
			return
		}

		if session.Expired(time.Now().UTC()) {
			response.Unauthorized(c, "Session expired", "SESSION_EXPIRED")
			c.Abort()
			return
		}

		c.Set("userID", session.UserID)
		c.Next()
	}
}

// RequireAdmin re-resolves the user and rejects anyone without the admin
// role. Must run after RequireSession.
func RequireAdmin(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("userID")

		user, err := users.FindUserByID(c.Request.Context(), userID)
		if err != nil {
			response.InternalServerError(c, "User lookup failed", "DATABASE_ERROR")
			c.Abort()
			return
		}
		if user == nil || user.Role != "admin" {
			response.Forbidden(c, "Admin access required", "ADMIN_REQUIRED")
			c.Abort()
			return
		}

		c.Next()
	}
}
