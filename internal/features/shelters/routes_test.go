package shelters

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/xyz-asif/disasterdash/internal/features/auth"
)

type stubSessions struct {
	session *auth.Session
}

func (s *stubSessions) FindSessionByToken(ctx context.Context, token string) (*auth.Session, error) {
	return s.session, nil
}

type stubUsers struct {
	user *auth.User
}

func (s *stubUsers) FindUserByID(ctx context.Context, userID string) (*auth.User, error) {
	return s.user, nil
}

// Mirrors the registered chain for POST /shelters with the lookups stubbed
// out.
func shelterCreateRouter(sessions auth.SessionFinder, users auth.UserFinder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(nil)

	r := gin.New()
	r.POST("/shelters", auth.RequireSession(sessions), auth.RequireAdmin(users), handler.Create)
	return r
}

func TestCreateShelterRejectsNonAdmin(t *testing.T) {
	session := &auth.Session{SessionToken: "session_abc", UserID: "user-1", CreatedAt: time.Now().UTC()}
	user := &auth.User{ID: "user-1", Role: "user"}
	r := shelterCreateRouter(&stubSessions{session: session}, &stubUsers{user: user})

	body := `{"name": "Gym hall", "location": {"lat": 1, "lng": 2}, "capacity": 50, "type": "general"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/shelters", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer session_abc")
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 403, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Admin access required", resp["error"])
}

func TestCreateShelterRequiresSession(t *testing.T) {
	r := shelterCreateRouter(&stubSessions{}, &stubUsers{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/shelters", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 401, w.Code)
}
