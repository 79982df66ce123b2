package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
)

// GetUserTransactions returns the user's donation transactions, newest first
func (s *DonationService) GetUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.DonationTransaction, error) {
	txns, err := s.repo.GetUserTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user transactions: %w", err)
	}
	return txns, nil
}

// GetTotalDonations returns the lifetime sum of the user's completed round-ups
func (s *DonationService) GetTotalDonations(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	total, err := s.repo.GetTotalCompletedRoundUps(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get total donations: %w", err)
	}
	return total, nil
}
