// Package officer proxies officer administration calls to the upstream
// admin REST API. It is stateless glue: authentication travels as the
// admin's auth_token cookie and responses arrive in a success/message
// envelope.
package officer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain"
)

// Officer is the upstream officer record.
type Officer struct {
	ID            string         `json:"_id"`
	Username      string         `json:"username"`
	Email         string         `json:"email"`
	ContactNumber string         `json:"contactNumber"`
	Role          string         `json:"role"`
	Permissions   map[string]any `json:"permissions"`
	IsActive      bool           `json:"isActive"`
	ParentAdmin   string         `json:"parentAdmin"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
}

// CreateOfficer is the payload for creating an officer.
type CreateOfficer struct {
	Username      string          `json:"username"`
	Password      string          `json:"password"`
	Email         string          `json:"email"`
	ContactNumber string          `json:"contactNumber"`
	Permissions   map[string]bool `json:"permissions,omitempty"`
	IsActive      bool            `json:"isActive"`
}

// Client talks to the upstream officer API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an officer API client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type envelope struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	Officer  *Officer  `json:"officer"`
	Officers []Officer `json:"officers"`
}

// Create creates a new officer under the given admin.
func (c *Client) Create(
	ctx context.Context, data CreateOfficer, adminUsername, authToken string,
) (Officer, error) {
	payload := map[string]any{
		"username":      data.Username,
		"password":      data.Password,
		"email":         data.Email,
		"contactNumber": data.ContactNumber,
		"permissions":   data.Permissions,
		"isActive":      data.IsActive,
		"adminUsername": adminUsername,
	}
	env, err := c.call(ctx, http.MethodPost, "/api/admin/officer/create", payload, authToken)
	if err != nil {
		return Officer{}, fmt.Errorf("create officer: %w", err)
	}
	if env.Officer == nil {
		return Officer{}, fmt.Errorf("%w: create response missing officer", domain.ErrUpstreamRejected)
	}
	return *env.Officer, nil
}

// List returns all officers of the given admin.
func (c *Client) List(ctx context.Context, adminUsername, authToken string) ([]Officer, error) {
	path := "/api/admin/officer/list?adminUsername=" + url.QueryEscape(adminUsername)
	env, err := c.call(ctx, http.MethodGet, path, nil, authToken)
	if err != nil {
		return nil, fmt.Errorf("list officers: %w", err)
	}
	return env.Officers, nil
}

// UpdateStatus activates or deactivates an officer.
func (c *Client) UpdateStatus(
	ctx context.Context, officerID string, isActive bool, adminUsername, authToken string,
) (string, error) {
	payload := map[string]any{
		"officerId":     officerID,
		"isActive":      isActive,
		"adminUsername": adminUsername,
	}
	env, err := c.call(ctx, http.MethodPost, "/api/admin/officer/update-status", payload, authToken)
	if err != nil {
		return "", fmt.Errorf("update officer status: %w", err)
	}
	return env.Message, nil
}

// Delete removes an officer.
func (c *Client) Delete(
	ctx context.Context, officerID, adminUsername, authToken string,
) (string, error) {
	payload := map[string]any{
		"officerId":     officerID,
		"adminUsername": adminUsername,
	}
	env, err := c.call(ctx, http.MethodPost, "/api/admin/officer/delete", payload, authToken)
	if err != nil {
		return "", fmt.Errorf("delete officer: %w", err)
	}
	return env.Message, nil
}

// UpdatePermissions replaces an officer's permission set.
func (c *Client) UpdatePermissions(
	ctx context.Context, officerID string, permissions map[string]bool,
	adminUsername, authToken string,
) (Officer, error) {
	payload := map[string]any{
		"officerId":     officerID,
		"permissions":   permissions,
		"adminUsername": adminUsername,
	}
	env, err := c.call(ctx, http.MethodPut, "/api/admin/officer/update-permissions", payload, authToken)
	if err != nil {
		return Officer{}, fmt.Errorf("update officer permissions: %w", err)
	}
	if env.Officer == nil {
		return Officer{}, fmt.Errorf("%w: update response missing officer", domain.ErrUpstreamRejected)
	}
	return *env.Officer, nil
}

func (c *Client) call(
	ctx context.Context, method, path string, payload any, authToken string,
) (envelope, error) {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return envelope{}, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return envelope{}, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: authToken})

	resp, err := c.http.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return envelope{}, fmt.Errorf("%w: status %d", domain.ErrUpstreamRejected, resp.StatusCode)
		}
		return envelope{}, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return envelope{}, fmt.Errorf("%w: %s", domain.ErrUpstreamRejected, msg)
	}
	return env, nil
}
