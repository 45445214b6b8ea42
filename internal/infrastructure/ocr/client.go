package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/verification"
)

var _ verification.DocumentExtractor = (*Client)(nil)

// Client calls the document-extraction provider's REST API.
// Extraction is asynchronous: submission returns a job reference and the
// result arrives on the webhook.
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

type submitRequest struct {
	Kind        string `json:"kind"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"` // base64
}

type submitResponse struct {
	JobID string `json:"job_id"`
	Error string `json:"error,omitempty"`
}

func (c *Client) SubmitDocument(ctx context.Context, kind string, body []byte, contentType string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("ocr: OCR_API_KEY not configured")
	}

	payload, err := json.Marshal(submitRequest{
		Kind:        kind,
		ContentType: contentType,
		Content:     base64.StdEncoding.EncodeToString(body),
	})
	if err != nil {
		return "", fmt.Errorf("ocr: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/extractions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("ocr: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr: submit: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ocr: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return "", fmt.Errorf("ocr: provider returned %d: %s", resp.StatusCode, raw)
	}

	var out submitResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("ocr: decode response: %w", err)
	}
	if out.JobID == "" {
		return "", fmt.Errorf("ocr: provider error: %s", out.Error)
	}
	return out.JobID, nil
}
