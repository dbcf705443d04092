package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrInvalidSession means the upstream rejected the session id
var ErrInvalidSession = errors.New("invalid session")

// Profile is the identity returned by the external session exchange
type Profile struct {
	Email   string  `json:"email"`
	Name    string  `json:"name"`
	Picture *string `json:"picture"`
}

// Exchanger resolves an external session id to a user profile
type Exchanger interface {
	Exchange(ctx context.Context, sessionID string) (*Profile, error)
}

// Client calls the external session-exchange endpoint. The reference
// deployment had no timeout here, which lets a stalled upstream hold the
// request forever; the explicit client timeout is a deliberate hardening.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url: url,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) Exchange(ctx context.Context, sessionID string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build session exchange request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session exchange call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidSession
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode session exchange response: %w", err)
	}

	return &profile, nil
}
