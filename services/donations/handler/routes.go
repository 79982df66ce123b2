package handler

import (
	"github.com/labstack/echo/v4"
	handler_http "github.com/sparechange/roundup/services/donations/handler/http"
	handler_nats "github.com/sparechange/roundup/services/donations/handler/nats"
)

// Handler coordinates all protocol handlers for the donations service
type Handler struct {
	donationHandler    *handler_http.DonationHandler
	preferencesHandler *handler_http.PreferencesHandler
	webhookHandler     *handler_http.WebhookHandler
	natsHandler        *handler_nats.NatsHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(
	donationHandler *handler_http.DonationHandler,
	preferencesHandler *handler_http.PreferencesHandler,
	webhookHandler *handler_http.WebhookHandler,
	natsHandler *handler_nats.NatsHandler,
) *Handler {
	return &Handler{
		donationHandler:    donationHandler,
		preferencesHandler: preferencesHandler,
		webhookHandler:     webhookHandler,
		natsHandler:        natsHandler,
	}
}

// RegisterRoutes registers HTTP routes and starts NATS consumers
func (h *Handler) RegisterRoutes(e *echo.Echo) error {
	donationGroup := e.Group("/donations")
	donationGroup.POST("/direct", h.donationHandler.SubmitDirectDonation)
	donationGroup.POST("/roundup", h.donationHandler.SubmitRoundUpDonation)
	donationGroup.GET("/opportunities/:userID", h.donationHandler.GetOpportunities)
	donationGroup.GET("/transactions/:userID", h.donationHandler.GetUserTransactions)
	donationGroup.GET("/total/:userID", h.donationHandler.GetTotalDonations)

	preferencesGroup := e.Group("/preferences")
	preferencesGroup.GET("/:userID", h.preferencesHandler.GetPreferences)
	preferencesGroup.PUT("/:userID", h.preferencesHandler.UpdatePreferences)

	webhookGroup := e.Group("/webhooks")
	webhookGroup.POST("/stripe", h.webhookHandler.StripeWebhook)
	webhookGroup.POST("/plaid", h.webhookHandler.PlaidWebhook)

	return h.natsHandler.InitConsumers()
}

// Close shuts down the NATS consumers
func (h *Handler) Close() {
	h.natsHandler.Close()
}
