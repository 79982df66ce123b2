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

const instrumentColumns = `id, user_id, kind, processor_ref, last_four, brand,
	is_default, is_active, requires_verification, created_at, updated_at`

// GetInstrumentByID retrieves a funding instrument scoped to its owner
func (r *DonationRepository) GetInstrumentByID(ctx context.Context, userID, instrumentID uuid.UUID) (*models.FundingInstrument, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM funding_instruments
		WHERE id = $1 AND user_id = $2
	`, instrumentColumns)

	var instrument models.FundingInstrument
	if err := r.db.GetContext(ctx, &instrument, query, instrumentID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donations.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get funding instrument: %w", err)
	}
	return &instrument, nil
}

// GetActiveInstruments lists the user's active instruments in creation order
// with id as tiebreaker, so instrument resolution is deterministic
func (r *DonationRepository) GetActiveInstruments(ctx context.Context, userID uuid.UUID) ([]models.FundingInstrument, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM funding_instruments
		WHERE user_id = $1 AND is_active = true
		ORDER BY created_at ASC, id ASC
	`, instrumentColumns)

	var instruments []models.FundingInstrument
	if err := r.db.SelectContext(ctx, &instruments, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list funding instruments: %w", err)
	}
	return instruments, nil
}
