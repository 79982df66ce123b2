package gateway

import (
	"context"

	"github.com/sparechange/roundup/internal/pkg/models"
	natspkg "github.com/sparechange/roundup/internal/pkg/nats"
)

// NATS subjects for donation lifecycle events
const (
	SubjectDonationCompleted = "donations.completed"
	SubjectDonationFailed    = "donations.failed"
)

// EventGateway implements the donations.EventGW interface over NATS
type EventGateway struct {
	producer *natspkg.Producer
}

// NewEventGateway creates a new donation event gateway
func NewEventGateway(client *natspkg.Client) *EventGateway {
	return &EventGateway{
		producer: natspkg.NewProducer(client),
	}
}

// PublishDonationCompleted publishes a donation completed event
func (g *EventGateway) PublishDonationCompleted(ctx context.Context, event *models.DonationEvent) error {
	return g.producer.Publish(SubjectDonationCompleted, event)
}

// PublishDonationFailed publishes a donation failed event
func (g *EventGateway) PublishDonationFailed(ctx context.Context, event *models.DonationEvent) error {
	return g.producer.Publish(SubjectDonationFailed, event)
}
