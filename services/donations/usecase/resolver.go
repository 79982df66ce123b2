package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/services/donations"
)

// ResolveInstrument selects the funding instrument for a donation request.
// Resolution order: an explicit instrument (must belong to the user and be
// active), the user's active default, then the oldest active instrument as a
// last resort for ingestion-originated round-ups that carry no explicit
// choice. The last-resort order is creation order with id as tiebreaker so
// the instrument absorbing an instrument-less round-up is deterministic.
func (s *DonationService) ResolveInstrument(ctx context.Context, userID uuid.UUID, explicitID *uuid.UUID) (*models.FundingInstrument, error) {
	if explicitID != nil {
		instrument, err := s.repo.GetInstrumentByID(ctx, userID, *explicitID)
		if err != nil {
			if err == donations.ErrNotFound {
				return nil, donations.ErrInstrumentNotFound
			}
			return nil, fmt.Errorf("failed to get funding instrument: %w", err)
		}
		if !instrument.IsActive {
			return nil, donations.ErrInstrumentInactive
		}
		return instrument, nil
	}

	instruments, err := s.repo.GetActiveInstruments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list funding instruments: %w", err)
	}
	if len(instruments) == 0 {
		return nil, donations.ErrNoFundingInstrument
	}

	for i := range instruments {
		if instruments[i].IsDefault {
			return &instruments[i], nil
		}
	}

	// Repository returns instruments ordered by (created_at, id)
	return &instruments[0], nil
}
