package auth

import (
	"time"
)

// User is a registered dashboard user. Identity comes entirely from the
// external session exchange; there are no passwords.
type User struct {
	ID            string    `bson:"id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	Name          string    `bson:"name" json:"name"`
	Picture       *string   `bson:"picture" json:"picture"`
	PreferredCity *string   `bson:"preferred_city" json:"preferred_city"`
	Role          string    `bson:"role" json:"role"` // "user" | "admin"
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	LastSeenAt    time.Time `bson:"last_seen_at" json:"last_seen_at"`
}

// Session maps an opaque bearer token to a user and an issue time. Expiry is
// computed lazily at lookup time; nothing sweeps old sessions.
type Session struct {
	SessionToken string    `bson:"session_token" json:"session_token"`
	UserID       string    `bson:"user_id" json:"user_id"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// SessionRequest is the payload for exchanging an external session id
type SessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// SessionResponse is returned after a successful exchange
type SessionResponse struct {
	SessionToken string `json:"session_token"`
	User         *User  `json:"user"`
}

const sessionMaxAgeDays = 7

// Expired reports whether the session has outlived its 7-day window.
// The age is truncated to whole days, so a session at 7 days plus a few
// hours is still valid and only fails once 8 full days have elapsed.
func (s *Session) Expired(now time.Time) bool {
	days := int(now.Sub(s.CreatedAt).Hours() / 24)
	return days > sessionMaxAgeDays
}
