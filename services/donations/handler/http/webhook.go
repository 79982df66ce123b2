package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sparechange/roundup/internal/pkg/logger"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/internal/utils"
	"github.com/sparechange/roundup/services/donations"
)

// WebhookHandler handles processor and transaction feed webhooks. Handlers
// answer 200 on anything the reconciler absorbed; a non-2xx only when
// retrying the delivery could actually help.
type WebhookHandler struct {
	donationUC donations.DonationUC
	cfg        *models.Config
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(donationUC donations.DonationUC, cfg *models.Config) *WebhookHandler {
	return &WebhookHandler{
		donationUC: donationUC,
		cfg:        cfg,
	}
}

// stripeEvent is the subset of the processor's event envelope the
// reconciler needs
type stripeEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"object"`
	} `json:"data"`
}

// StripeWebhook handles asynchronous payment status pushes
func (h *WebhookHandler) StripeWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read request body")
	}

	if secret := h.cfg.Stripe.WebhookSecret; secret != "" {
		if !verifyStripeSignature(c.Request().Header.Get("Stripe-Signature"), body, secret) {
			logger.Warn("Rejected webhook with invalid signature")
			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid signature")
		}
	}

	var event stripeEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return utils.BadRequestResponse(c, "Invalid event payload")
	}

	processorEvent := &models.ProcessorEvent{
		Source:          models.WebhookSourceStripe,
		ExternalEventID: event.ID,
		Type:            event.Type,
		ProcessorRef:    event.Data.Object.ID,
		Status:          event.Data.Object.Status,
	}

	if err := h.donationUC.ApplyProcessorEvent(c.Request().Context(), processorEvent); err != nil {
		logger.Error("Failed to apply processor event",
			logger.String("event_id", event.ID),
			logger.String("type", event.Type),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process event")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Event processed", nil)
}

// PlaidWebhook handles transaction feed notifications
func (h *WebhookHandler) PlaidWebhook(c echo.Context) error {
	var req models.FeedWebhookRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.WebhookType == "ITEM" && req.WebhookCode == "ERROR" {
		logger.Error("Transaction feed reported an item error",
			logger.String("item_id", req.ItemID))
		return utils.SuccessResponse(c, http.StatusOK, "Item error acknowledged", nil)
	}

	if err := h.donationUC.HandleFeedWebhook(c.Request().Context(), &req); err != nil {
		logger.Error("Failed to handle feed webhook",
			logger.String("item_id", req.ItemID),
			logger.String("webhook_code", req.WebhookCode),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to process webhook")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Webhook processed", nil)
}

// verifyStripeSignature checks the v1 scheme of the Stripe-Signature header:
// HMAC-SHA256 over "<timestamp>.<body>" keyed with the endpoint secret
func verifyStripeSignature(header string, body []byte, secret string) bool {
	if header == "" {
		return false
	}

	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		k, v, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch k {
		case "t":
			timestamp = v
		case "v1":
			signatures = append(signatures, v)
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(expected), []byte(sig)) {
			return true
		}
	}
	return false
}
