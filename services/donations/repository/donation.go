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

// CreateDonation persists a new donation in pending state
func (r *DonationRepository) CreateDonation(ctx context.Context, donation *models.Donation) error {
	query := `
		INSERT INTO donations (
			id, user_id, charity_id, amount, instrument_id, kind, status,
			processor_ref, simulated, created_at, completed_at, version
		) VALUES (
			:id, :user_id, :charity_id, :amount, :instrument_id, :kind, :status,
			:processor_ref, :simulated, :created_at, :completed_at, :version
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, donation)
	if err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}
	return nil
}

// GetDonationByID retrieves a donation by ID
func (r *DonationRepository) GetDonationByID(ctx context.Context, id uuid.UUID) (*models.Donation, error) {
	query := `
		SELECT id, user_id, charity_id, amount, instrument_id, kind, status,
		       processor_ref, simulated, created_at, completed_at, version
		FROM donations
		WHERE id = $1
	`
	var donation models.Donation
	if err := r.db.GetContext(ctx, &donation, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donations.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}
	return &donation, nil
}

// GetDonationByProcessorRef retrieves the donation carrying a processor
// reference. Refs are unique per processor object, so at most one row matches.
func (r *DonationRepository) GetDonationByProcessorRef(ctx context.Context, processorRef string) (*models.Donation, error) {
	query := `
		SELECT id, user_id, charity_id, amount, instrument_id, kind, status,
		       processor_ref, simulated, created_at, completed_at, version
		FROM donations
		WHERE processor_ref = $1
	`
	var donation models.Donation
	if err := r.db.GetContext(ctx, &donation, query, processorRef); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donations.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get donation by processor ref: %w", err)
	}
	return &donation, nil
}

// UpdateDonationStatus applies a status transition guarded by the version
// token. Zero rows affected means the row moved underneath the caller.
func (r *DonationRepository) UpdateDonationStatus(ctx context.Context, id uuid.UUID, version int64, status string, processorRef *string, completedAt *time.Time, simulated bool) error {
	query := `
		UPDATE donations
		SET status = $1,
		    processor_ref = COALESCE($2, processor_ref),
		    completed_at = COALESCE($3, completed_at),
		    simulated = simulated OR $4,
		    version = version + 1
		WHERE id = $5 AND version = $6
	`
	result, err := r.db.ExecContext(ctx, query, status, processorRef, completedAt, simulated, id, version)
	if err != nil {
		return fmt.Errorf("failed to update donation status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return donations.ErrVersionConflict
	}
	return nil
}

// GetCharityName returns the display name of an active charity
func (r *DonationRepository) GetCharityName(ctx context.Context, charityID uuid.UUID) (string, error) {
	query := `SELECT name FROM charities WHERE id = $1 AND is_active = true`

	var name string
	if err := r.db.GetContext(ctx, &name, query, charityID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", donations.ErrNotFound
		}
		return "", fmt.Errorf("failed to get charity: %w", err)
	}
	return name, nil
}

// GetCustomerRef returns the user's payment processor customer reference
func (r *DonationRepository) GetCustomerRef(ctx context.Context, userID uuid.UUID) (string, error) {
	query := `SELECT processor_customer_ref FROM payment_profiles WHERE user_id = $1`

	var ref sql.NullString
	if err := r.db.GetContext(ctx, &ref, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", donations.ErrCustomerRefMissing
		}
		return "", fmt.Errorf("failed to get customer ref: %w", err)
	}
	if !ref.Valid || ref.String == "" {
		return "", donations.ErrCustomerRefMissing
	}
	return ref.String, nil
}
