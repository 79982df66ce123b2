package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/sparechange/roundup/internal/pkg/logger"
	natspkg "github.com/sparechange/roundup/internal/pkg/nats"
	"github.com/sparechange/roundup/services/donations"
)

// SubjectFeedSync mirrors the feed webhook: a message here triggers a
// round-up sweep for the named user
const SubjectFeedSync = "feed.sync"

// NatsHandler consumes donation-related NATS events
type NatsHandler struct {
	donationUC donations.DonationUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(donationUC donations.DonationUC, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		donationUC: donationUC,
		natsClient: natsClient,
	}
}

// feedSyncEvent is the payload on the feed.sync subject
type feedSyncEvent struct {
	UserID uuid.UUID `json:"user_id"`
}

// InitConsumers subscribes to all donation subjects
func (h *NatsHandler) InitConsumers() error {
	feedSub, err := h.natsClient.Subscribe(SubjectFeedSync, func(msg *nats.Msg) {
		if err := h.handleFeedSync(msg.Data); err != nil {
			logger.Error("Error handling feed sync event", logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to feed sync events: %w", err)
	}
	h.subs = append(h.subs, feedSub)

	return nil
}

// handleFeedSync runs a round-up sweep for the user named in the event
func (h *NatsHandler) handleFeedSync(msg []byte) error {
	var event feedSyncEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal feed sync event: %w", err)
	}
	if event.UserID == uuid.Nil {
		return fmt.Errorf("feed sync event carries no user id")
	}

	logger.Info("Received feed sync event", logger.String("user_id", event.UserID.String()))
	return h.donationUC.RunRoundUpSweep(context.Background(), event.UserID)
}

// Close drains all subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.Err(err))
		}
	}
	h.subs = nil
}
