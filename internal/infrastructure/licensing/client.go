package licensing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/verification"
)

var _ verification.LicenseRegistry = (*Client)(nil)

// Client queries the contractor-license registry aggregator. Lookups are
// synchronous, unlike the other verification providers.
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

type lookupResponse struct {
	Found     bool   `json:"found"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expires_at,omitempty"` // YYYY-MM-DD
	Error     string `json:"error,omitempty"`
}

func (c *Client) Lookup(ctx context.Context, state, licenseNumber string) (*verification.LicenseRecord, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("licensing: LICENSE_REGISTRY_API_KEY not configured")
	}

	endpoint := fmt.Sprintf("%s/v1/licenses?state=%s&number=%s",
		c.baseURL, url.QueryEscape(state), url.QueryEscape(licenseNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("licensing: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("licensing: lookup: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("licensing: read response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return &verification.LicenseRecord{Found: false}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("licensing: registry returned %d: %s", resp.StatusCode, raw)
	}

	var out lookupResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("licensing: decode response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("licensing: registry error: %s", out.Error)
	}

	record := &verification.LicenseRecord{
		Found:  out.Found,
		Status: out.Status,
	}
	if out.ExpiresAt != "" {
		t, err := time.Parse("2006-01-02", out.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("licensing: bad expiry %q: %w", out.ExpiresAt, err)
		}
		record.ExpiresAt = &t
	}
	return record, nil
}
