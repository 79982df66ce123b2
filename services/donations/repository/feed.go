package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/services/donations"
)

// GetFeedItemByItemID retrieves a linked transaction feed by its item id
func (r *DonationRepository) GetFeedItemByItemID(ctx context.Context, itemID string) (*models.FeedItem, error) {
	query := `
		SELECT item_id, user_id, access_token, last_synced
		FROM feed_items
		WHERE item_id = $1
	`
	var item models.FeedItem
	if err := r.db.GetContext(ctx, &item, query, itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donations.ErrNoFeedItem
		}
		return nil, fmt.Errorf("failed to get feed item: %w", err)
	}
	return &item, nil
}

// GetFeedItemByUserID retrieves the user's linked transaction feed
func (r *DonationRepository) GetFeedItemByUserID(ctx context.Context, userID uuid.UUID) (*models.FeedItem, error) {
	query := `
		SELECT item_id, user_id, access_token, last_synced
		FROM feed_items
		WHERE user_id = $1
	`
	var item models.FeedItem
	if err := r.db.GetContext(ctx, &item, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donations.ErrNoFeedItem
		}
		return nil, fmt.Errorf("failed to get feed item: %w", err)
	}
	return &item, nil
}

// MarkFeedItemSynced advances the feed item's sync watermark
func (r *DonationRepository) MarkFeedItemSynced(ctx context.Context, itemID string, syncedAt time.Time) error {
	query := `UPDATE feed_items SET last_synced = $1 WHERE item_id = $2`

	if _, err := r.db.ExecContext(ctx, query, syncedAt, itemID); err != nil {
		return fmt.Errorf("failed to mark feed item synced: %w", err)
	}
	return nil
}
