package screening

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

var _ verification.BackgroundChecker = (*Client)(nil)

// Client calls the tenant-screening provider. Reports complete
// asynchronously via webhook.
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

type orderRequest struct {
	Reference string `json:"reference"` // our application id
	Name      string `json:"name"`
	Email     string `json:"email"`
	Package   string `json:"package"`
}

type orderResponse struct {
	ReportID string `json:"report_id"`
	Error    string `json:"error,omitempty"`
}

func (c *Client) OrderReport(ctx context.Context, candidate verification.ScreeningCandidate) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("screening: SCREENING_API_KEY not configured")
	}

	payload, err := json.Marshal(orderRequest{
		Reference: candidate.ApplicationID,
		Name:      candidate.Name,
		Email:     candidate.Email,
		Package:   "tenant_standard",
	})
	if err != nil {
		return "", fmt.Errorf("screening: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/reports", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("screening: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("screening: order report: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("screening: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("screening: provider returned %d: %s", resp.StatusCode, raw)
	}

	var out orderResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("screening: decode response: %w", err)
	}
	if out.ReportID == "" {
		return "", fmt.Errorf("screening: provider error: %s", out.Error)
	}
	return out.ReportID, nil
}
