package reports

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	apperrors "github.com/xyz-asif/disasterdash/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeStore struct {
	created   *Report
	report    *Report
	updates   bson.M
	updateErr error
}

func (f *fakeStore) Create(ctx context.Context, report *Report) error {
	f.created = report
	return nil
}

func (f *fakeStore) List(ctx context.Context, city, status string) ([]Report, error) {
	return []Report{}, nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*Report, error) {
	if f.report == nil {
		return nil, apperrors.ErrNotFound
	}
	return f.report, nil
}

func (f *fakeStore) Update(ctx context.Context, id string, updates bson.M) error {
	f.updates = updates
	return f.updateErr
}

func newReportRouter(store Store, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(store)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
	})
	r.POST("/reports", handler.Create)
	r.GET("/reports/:id", handler.Get)
	r.PUT("/reports/:id", handler.Update)
	return r
}

func TestCreateOverridesClientSuppliedFields(t *testing.T) {
	store := &fakeStore{}
	r := newReportRouter(store, "reporter-1")

	// Fields outside the request contract must not leak into the stored
	// document.
	body := `{
		"title": "Flooded underpass",
		"description": "Water level rising fast",
		"location": {"lat": 48.85, "lng": 2.35},
		"city": "Paris",
		"status": "validated",
		"reporter_id": "intruder",
		"ai_severity_score": 0.95,
		"ai_auto_flag": true
	}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.NotNil(t, store.created)
	require.Equal(t, "pending", store.created.Status)
	require.Equal(t, "reporter-1", store.created.ReporterID)
	require.Nil(t, store.created.AISeverityScore)
	require.False(t, store.created.AIAutoFlag)
	require.NotEmpty(t, store.created.ID)
}

func TestCreateRejectsMissingTitle(t *testing.T) {
	store := &fakeStore{}
	r := newReportRouter(store, "reporter-1")

	body := `{"description": "no title", "location": {"lat": 1, "lng": 2}}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/reports", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	require.Nil(t, store.created)
}

func TestUpdateRequiresStatus(t *testing.T) {
	store := &fakeStore{}
	r := newReportRouter(store, "admin-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/reports/r1", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 400, w.Code)
	require.Nil(t, store.updates)
}

func TestUpdateOnlyTouchesProvidedFields(t *testing.T) {
	store := &fakeStore{}
	r := newReportRouter(store, "admin-1")

	body := `{"status": "validated"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/reports/r1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 200, w.Code)
	require.Equal(t, bson.M{"status": "validated"}, store.updates)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Report updated successfully", resp["message"])
}

func TestUpdateMissingReport(t *testing.T) {
	store := &fakeStore{updateErr: apperrors.ErrNotFound}
	r := newReportRouter(store, "admin-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/reports/missing", strings.NewReader(`{"status": "resolved"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, 404, w.Code)
}

func TestGetMissingReport(t *testing.T) {
	r := newReportRouter(&fakeStore{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/reports/missing", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, 404, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Report not found", resp["error"])
}
