package http_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/coffeevibes888/rentflowhq-sub006/internal/interfaces/http"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

const webhookSecret = "whsec-test"

// The rejection paths never reach a use case, so nil use cases are fine here.
func buildWebhookApp(secrets apphttp.WebhookSecrets) *fiber.App {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	h := apphttp.NewWebhookHandler(nil, nil, nil, nil, nil, nil, secrets, log)
	app := fiber.New()
	app.Post("/webhooks/payments", h.Payment)
	return app
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, app *fiber.App, body []byte, signature string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Signature", signature)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestWebhook_MissingSignatureRejected(t *testing.T) {
	app := buildWebhookApp(apphttp.WebhookSecrets{Payment: webhookSecret})
	resp := postWebhook(t, app, []byte(`{"id":"mp-1","status":"approved"}`), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWebhook_WrongSignatureRejected(t *testing.T) {
	app := buildWebhookApp(apphttp.WebhookSecrets{Payment: webhookSecret})
	body := []byte(`{"id":"mp-1","status":"approved"}`)
	resp := postWebhook(t, app, body, sign("wrong-secret", body))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWebhook_TamperedBodyRejected(t *testing.T) {
	app := buildWebhookApp(apphttp.WebhookSecrets{Payment: webhookSecret})
	signature := sign(webhookSecret, []byte(`{"id":"mp-1","status":"approved"}`))
	resp := postWebhook(t, app, []byte(`{"id":"mp-1","status":"rejected"}`), signature)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWebhook_NoConfiguredSecretDisablesEndpoint(t *testing.T) {
	app := buildWebhookApp(apphttp.WebhookSecrets{})
	body := []byte(`{"id":"mp-1","status":"approved"}`)
	// Even a correctly signed request is rejected when no secret is set.
	resp := postWebhook(t, app, body, sign("", body))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestWebhook_ValidSignatureBadPayload(t *testing.T) {
	app := buildWebhookApp(apphttp.WebhookSecrets{Payment: webhookSecret})
	body := []byte(`{"status":"approved"}`) // no provider id
	resp := postWebhook(t, app, body, sign(webhookSecret, body))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
