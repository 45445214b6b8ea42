package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/verification"
)

var _ verification.IdentityVerifier = (*Client)(nil)

// Client calls the identity-verification provider. The provider hosts the
// document-capture flow; we only create sessions and consume webhooks.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

type sessionRequest struct {
	Reference string `json:"reference"` // our account id
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	Error     string `json:"error,omitempty"`
}

func (c *Client) CreateSession(ctx context.Context, accountID, name, email string) (string, string, error) {
	if c.apiKey == "" {
		return "", "", fmt.Errorf("identity: IDENTITY_API_KEY not configured")
	}

	payload, err := json.Marshal(sessionRequest{Reference: accountID, Name: name, Email: email})
	if err != nil {
		return "", "", fmt.Errorf("identity: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/sessions", bytes.NewReader(payload))
	if err != nil {
		return "", "", fmt.Errorf("identity: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("identity: create session: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("identity: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", "", fmt.Errorf("identity: provider returned %d: %s", resp.StatusCode, raw)
	}

	var out sessionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", "", fmt.Errorf("identity: decode response: %w", err)
	}
	if out.SessionID == "" {
		return "", "", fmt.Errorf("identity: provider error: %s", out.Error)
	}
	return out.SessionID, out.URL, nil
}
