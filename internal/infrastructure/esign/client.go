package esign

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/leasing"
)

var _ leasing.SignatureService = (*Client)(nil)

// Client calls the e-signature provider. Envelope lifecycle events
// (sent, viewed, signed, declined) arrive on the provider webhook.
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

type envelopeRequest struct {
	Reference   string `json:"reference"` // our lease id
	Document    string `json:"document"`  // base64 PDF
	SignerName  string `json:"signer_name"`
	SignerEmail string `json:"signer_email"`
}

type envelopeResponse struct {
	EnvelopeID string `json:"envelope_id"`
	Error      string `json:"error,omitempty"`
}

func (c *Client) CreateEnvelope(ctx context.Context, leaseID string, document []byte, signerName, signerEmail string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("esign: ESIGN_API_KEY not configured")
	}

	payload, err := json.Marshal(envelopeRequest{
		Reference:   leaseID,
		Document:    base64.StdEncoding.EncodeToString(document),
		SignerName:  signerName,
		SignerEmail: signerEmail,
	})
	if err != nil {
		return "", fmt.Errorf("esign: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/envelopes", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("esign: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("esign: create envelope: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("esign: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("esign: provider returned %d: %s", resp.StatusCode, raw)
	}

	var out envelopeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("esign: decode response: %w", err)
	}
	if out.EnvelopeID == "" {
		return "", fmt.Errorf("esign: provider error: %s", out.Error)
	}
	return out.EnvelopeID, nil
}
