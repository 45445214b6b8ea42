package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/dto"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/leasing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/payments"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/verification"
	"github.com/coffeevibes888/rentflowhq-sub006/pkg/logger"
)

// signatureHeader carries the hex HMAC-SHA256 of the raw request body.
const signatureHeader = "X-Signature"

// WebhookSecrets per-provider HMAC secrets for incoming callbacks.
type WebhookSecrets struct {
	Payment   string
	ESign     string
	Screening string
	OCR       string
	Identity  string
}

// WebhookHandler receives provider callbacks. Every endpoint verifies the
// body's HMAC before touching any use case, and answers 200 for events the
// use cases recognize as stale or duplicate so providers stop retrying.
type WebhookHandler struct {
	rentUC      *payments.RentPaymentUseCase
	subUC       *payments.SubscriptionUseCase
	leaseUC     *leasing.LeaseUseCase
	screeningUC *verification.ScreeningUseCase
	docUC       *verification.DocumentUseCase
	identityUC  *verification.IdentityUseCase
	secrets     WebhookSecrets
	log         *logger.Logger
}

// NewWebhookHandler builds the handler.
func NewWebhookHandler(
	rentUC *payments.RentPaymentUseCase,
	subUC *payments.SubscriptionUseCase,
	leaseUC *leasing.LeaseUseCase,
	screeningUC *verification.ScreeningUseCase,
	docUC *verification.DocumentUseCase,
	identityUC *verification.IdentityUseCase,
	secrets WebhookSecrets,
	log *logger.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		rentUC:      rentUC,
		subUC:       subUC,
		leaseUC:     leaseUC,
		screeningUC: screeningUC,
		docUC:       docUC,
		identityUC:  identityUC,
		secrets:     secrets,
		log:         log,
	}
}

// verify checks the HMAC-SHA256 signature over the raw body. A missing secret
// rejects everything: webhooks without a configured secret are disabled.
func (h *WebhookHandler) verify(c *fiber.Ctx, source, secret string) ([]byte, bool) {
	body := c.Body()
	if secret == "" {
		webhookEvents.WithLabelValues(source, "rejected").Inc()
		return nil, false
	}
	sig, err := hex.DecodeString(c.Get(signatureHeader))
	if err != nil || len(sig) == 0 {
		webhookEvents.WithLabelValues(source, "rejected").Inc()
		return nil, false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(sig, mac.Sum(nil)) {
		webhookEvents.WithLabelValues(source, "rejected").Inc()
		return nil, false
	}
	return body, true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SIGNATURE", Message: "signature verification failed"})
}

func badPayload(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PAYLOAD", Message: "unparseable webhook payload"})
}

func (h *WebhookHandler) done(c *fiber.Ctx, source string, err error) error {
	if err != nil {
		webhookEvents.WithLabelValues(source, "failed").Inc()
		h.log.Error().Err(err).Str("source", source).Msg("webhook processing failed")
		// Non-200 makes the provider redeliver; processing is idempotent.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "event not processed"})
	}
	webhookEvents.WithLabelValues(source, "ok").Inc()
	return c.SendStatus(fiber.StatusOK)
}

// paymentEvent covers both one-off rent charges and subscription charges.
type paymentEvent struct {
	Type   string `json:"type"` // payment, subscription
	ID     string `json:"id"`   // provider payment or subscription reference
	Status string `json:"status"`
}

// Payment handles payment-provider callbacks.
func (h *WebhookHandler) Payment(c *fiber.Ctx) error {
	body, ok := h.verify(c, "payment", h.secrets.Payment)
	if !ok {
		return unauthorized(c)
	}
	var ev paymentEvent
	if err := json.Unmarshal(body, &ev); err != nil || ev.ID == "" {
		return badPayload(c)
	}
	switch ev.Type {
	case "subscription":
		return h.done(c, "payment", h.subUC.HandleProviderEvent(ev.ID, ev.Status))
	default:
		return h.done(c, "payment", h.rentUC.HandlePaymentEvent(c.Context(), ev.ID, ev.Status, json.RawMessage(body)))
	}
}

type signatureEvent struct {
	EnvelopeID string    `json:"envelope_id"`
	Event      string    `json:"event"` // sent, viewed, signed, declined
	OccurredAt time.Time `json:"occurred_at"`
}

// ESign handles e-signature envelope callbacks.
func (h *WebhookHandler) ESign(c *fiber.Ctx) error {
	body, ok := h.verify(c, "esign", h.secrets.ESign)
	if !ok {
		return unauthorized(c)
	}
	var ev signatureEvent
	if err := json.Unmarshal(body, &ev); err != nil || ev.EnvelopeID == "" || ev.Event == "" {
		return badPayload(c)
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	return h.done(c, "esign", h.leaseUC.HandleSignatureEvent(ev.EnvelopeID, ev.Event, ev.OccurredAt))
}

type screeningEvent struct {
	ReportID string `json:"report_id"`
	Result   string `json:"result"` // clear, consider, failed
	Summary  string `json:"summary"`
}

// Screening handles background-check callbacks.
func (h *WebhookHandler) Screening(c *fiber.Ctx) error {
	body, ok := h.verify(c, "screening", h.secrets.Screening)
	if !ok {
		return unauthorized(c)
	}
	var ev screeningEvent
	if err := json.Unmarshal(body, &ev); err != nil || ev.ReportID == "" {
		return badPayload(c)
	}
	return h.done(c, "screening", h.screeningUC.HandleProviderEvent(ev.ReportID, ev.Result, ev.Summary))
}

type extractionEvent struct {
	JobID  string          `json:"job_id"`
	Status string          `json:"status"` // succeeded, failed
	Fields json.RawMessage `json:"fields,omitempty"`
}

// OCR handles document-extraction callbacks.
func (h *WebhookHandler) OCR(c *fiber.Ctx) error {
	body, ok := h.verify(c, "ocr", h.secrets.OCR)
	if !ok {
		return unauthorized(c)
	}
	var ev extractionEvent
	if err := json.Unmarshal(body, &ev); err != nil || ev.JobID == "" {
		return badPayload(c)
	}
	return h.done(c, "ocr", h.docUC.HandleExtractionEvent(verification.ExtractionEvent{
		ProviderRef: ev.JobID,
		Succeeded:   ev.Status == "succeeded",
		Fields:      ev.Fields,
	}))
}

type identityEvent struct {
	SessionID string `json:"session_id"`
	Outcome   string `json:"outcome"` // verified, failed
}

// Identity handles identity-verification session callbacks.
func (h *WebhookHandler) Identity(c *fiber.Ctx) error {
	body, ok := h.verify(c, "identity", h.secrets.Identity)
	if !ok {
		return unauthorized(c)
	}
	var ev identityEvent
	if err := json.Unmarshal(body, &ev); err != nil || ev.SessionID == "" {
		return badPayload(c)
	}
	return h.done(c, "identity", h.identityUC.HandleProviderEvent(ev.SessionID, ev.Outcome))
}
