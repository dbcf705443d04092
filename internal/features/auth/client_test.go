package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientExchangeSuccess(t *testing.T) {
	var gotSessionID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSessionID = r.Header.Get("X-Session-ID")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"jane@example.com","name":"Jane","picture":"https://img.example.com/j.png"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	profile, err := client.Exchange(context.Background(), "ext-session-123")
	require.NoError(t, err)
	require.Equal(t, "ext-session-123", gotSessionID)
	require.Equal(t, "jane@example.com", profile.Email)
	require.Equal(t, "Jane", profile.Name)
	require.NotNil(t, profile.Picture)
	require.Equal(t, "https://img.example.com/j.png", *profile.Picture)
}

func TestClientExchangeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Exchange(context.Background(), "bad-session")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestClientExchangeMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Exchange(context.Background(), "any")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidSession)
}

func TestClientExchangeUpstreamDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL)
	_, err := client.Exchange(context.Background(), "any")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidSession)
}
