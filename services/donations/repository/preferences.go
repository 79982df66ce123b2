package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/services/donations"
)

// GetPreferences retrieves the user's donation preferences
func (r *DonationRepository) GetPreferences(ctx context.Context, userID uuid.UUID) (*models.DonationPreferences, error) {
	query := `
		SELECT user_id, default_charity_id, auto_round_up, round_up_threshold,
		       monthly_donation_limit, donation_day_of_month, notify_on_donation,
		       created_at, updated_at
		FROM donation_preferences
		WHERE user_id = $1
	`
	var prefs models.DonationPreferences
	if err := r.db.GetContext(ctx, &prefs, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donations.ErrPreferencesNotFound
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &prefs, nil
}

// UpsertPreferences creates or replaces the user's donation preferences.
// created_at survives replacement.
func (r *DonationRepository) UpsertPreferences(ctx context.Context, prefs *models.DonationPreferences) error {
	query := `
		INSERT INTO donation_preferences (
			user_id, default_charity_id, auto_round_up, round_up_threshold,
			monthly_donation_limit, donation_day_of_month, notify_on_donation,
			created_at, updated_at
		) VALUES (
			:user_id, :default_charity_id, :auto_round_up, :round_up_threshold,
			:monthly_donation_limit, :donation_day_of_month, :notify_on_donation,
			:created_at, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			default_charity_id = EXCLUDED.default_charity_id,
			auto_round_up = EXCLUDED.auto_round_up,
			round_up_threshold = EXCLUDED.round_up_threshold,
			monthly_donation_limit = EXCLUDED.monthly_donation_limit,
			donation_day_of_month = EXCLUDED.donation_day_of_month,
			notify_on_donation = EXCLUDED.notify_on_donation,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := r.db.NamedExecContext(ctx, query, prefs); err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}
	return nil
}
