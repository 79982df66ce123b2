package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/services/donations"
)

// GetPreferences returns the user's round-up configuration
func (s *DonationService) GetPreferences(ctx context.Context, userID uuid.UUID) (*models.DonationPreferences, error) {
	return s.repo.GetPreferences(ctx, userID)
}

// UpdatePreferences validates and upserts the user's round-up configuration.
// First write creates the record, so the UI never needs a separate signup
// call for donations.
func (s *DonationService) UpdatePreferences(ctx context.Context, userID uuid.UUID, req *models.UpdatePreferencesRequest) (*models.DonationPreferences, error) {
	if req.DefaultCharityID == uuid.Nil {
		return nil, donations.ErrCharityRequired
	}
	if _, err := s.repo.GetCharityName(ctx, req.DefaultCharityID); err != nil {
		if errors.Is(err, donations.ErrNotFound) {
			return nil, donations.ErrCharityNotFound
		}
		return nil, fmt.Errorf("failed to get charity: %w", err)
	}
	if req.RoundUpThreshold.LessThan(decimal.Zero) || req.MonthlyDonationLimit.LessThan(decimal.Zero) {
		return nil, donations.ErrInvalidAmount
	}
	// Capped at 28 so scheduled donations exist in every month
	if req.DonationDayOfMonth < 1 || req.DonationDayOfMonth > 28 {
		return nil, donations.ErrInvalidDonationDay
	}

	now := s.now()
	prefs := &models.DonationPreferences{
		UserID:               userID,
		DefaultCharityID:     req.DefaultCharityID,
		AutoRoundUp:          req.AutoRoundUp,
		RoundUpThreshold:     req.RoundUpThreshold,
		MonthlyDonationLimit: req.MonthlyDonationLimit,
		DonationDayOfMonth:   req.DonationDayOfMonth,
		NotifyOnDonation:     req.NotifyOnDonation,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.repo.UpsertPreferences(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to upsert preferences: %w", err)
	}
	return prefs, nil
}
