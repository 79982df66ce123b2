package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasProcessedWebhookEvent(t *testing.T) {
	repo, mock, _, cleanup := setupRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(models.WebhookSourceStripe, "evt_123").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	seen, err := repo.HasProcessedWebhookEvent(context.Background(), models.WebhookSourceStripe, "evt_123")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestRecordWebhookEventTolerantOfRedelivery(t *testing.T) {
	repo, mock, _, cleanup := setupRepoTest(t)
	defer cleanup()

	// Conflicting insert affects zero rows; first writer wins
	mock.ExpectExec("INSERT INTO webhook_events").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RecordWebhookEvent(context.Background(), &models.WebhookEvent{
		ID:              uuid.New(),
		Source:          models.WebhookSourceStripe,
		ExternalEventID: "evt_123",
		Type:            "payment_intent.succeeded",
		Processed:       true,
		ReceivedAt:      time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
