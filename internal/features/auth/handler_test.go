package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubExchanger struct {
	profile *Profile
	err     error
}

func (s *stubExchanger) Exchange(ctx context.Context, sessionID string) (*Profile, error) {
	return s.profile, s.err
}

func newSessionRouter(exchanger Exchanger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(nil, exchanger)
	r := gin.New()
	r.POST("/auth/session", handler.ProcessSession)
	return r
}

func postSession(t *testing.T, r *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/session", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestProcessSessionMissingSessionID(t *testing.T) {
	r := newSessionRouter(&stubExchanger{})

	w := postSession(t, r, map[string]string{})
	require.Equal(t, 400, w.Code)
}

func TestProcessSessionInvalidUpstreamSession(t *testing.T) {
	r := newSessionRouter(&stubExchanger{err: ErrInvalidSession})

	w := postSession(t, r, map[string]string{"session_id": "nope"})
	require.Equal(t, 401, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Invalid session", body["error"])
}

func TestProcessSessionUpstreamFailure(t *testing.T) {
	r := newSessionRouter(&stubExchanger{err: errors.New("connection reset")})

	w := postSession(t, r, map[string]string{"session_id": "any"})
	require.Equal(t, 500, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Session processing failed", body["error"])
}

func TestProcessSessionUnusableEmail(t *testing.T) {
	r := newSessionRouter(&stubExchanger{profile: &Profile{Email: "", Name: "Ghost"}})

	w := postSession(t, r, map[string]string{"session_id": "any"})
	require.Equal(t, 500, w.Code)
}
