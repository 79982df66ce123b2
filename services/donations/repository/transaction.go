package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/logger"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/services/donations"
)

// monthToDateCacheTTL bounds staleness of the cached monthly total. Writes
// invalidate eagerly; the TTL only covers missed invalidations.
const monthToDateCacheTTL = 5 * time.Minute

const transactionColumns = `id, user_id, charity_id, donation_id, external_txn_id,
	original_amount, round_up_amount, total_amount, status, description,
	processor_ref, transaction_date, created_at, processed_at, version`

// CreateTransaction persists a donation transaction. A unique-constraint hit
// on external_txn_id means a concurrent sweep already ingested the feed entry
// and surfaces as ErrDuplicateTransaction.
func (r *DonationRepository) CreateTransaction(ctx context.Context, txn *models.DonationTransaction) error {
	query := `
		INSERT INTO donation_transactions (
			id, user_id, charity_id, donation_id, external_txn_id,
			original_amount, round_up_amount, total_amount, status, description,
			processor_ref, transaction_date, created_at, processed_at, version
		) VALUES (
			:id, :user_id, :charity_id, :donation_id, :external_txn_id,
			:original_amount, :round_up_amount, :total_amount, :status, :description,
			:processor_ref, :transaction_date, :created_at, :processed_at, :version
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, txn); err != nil {
		if isUniqueViolation(err) {
			return donations.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	if txn.Status == models.DonationStatusCompleted {
		r.invalidateMonthToDate(ctx, txn.UserID)
	}
	return nil
}

// GetTransactionByID retrieves a transaction by ID
func (r *DonationRepository) GetTransactionByID(ctx context.Context, id uuid.UUID) (*models.DonationTransaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM donation_transactions WHERE id = $1`, transactionColumns)

	var txn models.DonationTransaction
	if err := r.db.GetContext(ctx, &txn, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donations.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

// GetTransactionByProcessorRef retrieves the transaction carrying a processor reference
func (r *DonationRepository) GetTransactionByProcessorRef(ctx context.Context, processorRef string) (*models.DonationTransaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM donation_transactions WHERE processor_ref = $1`, transactionColumns)

	var txn models.DonationTransaction
	if err := r.db.GetContext(ctx, &txn, query, processorRef); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, donations.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by processor ref: %w", err)
	}
	return &txn, nil
}

// UpdateTransactionStatus applies a version-guarded status transition
func (r *DonationRepository) UpdateTransactionStatus(ctx context.Context, id uuid.UUID, version int64, status string, processorRef *string, processedAt *time.Time) error {
	query := `
		UPDATE donation_transactions
		SET status = $1,
		    processor_ref = COALESCE($2, processor_ref),
		    processed_at = COALESCE($3, processed_at),
		    version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING user_id
	`
	var userID uuid.UUID
	err := r.db.QueryRowContext(ctx, query, status, processorRef, processedAt, id, version).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return donations.ErrVersionConflict
		}
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	if status == models.DonationStatusCompleted {
		r.invalidateMonthToDate(ctx, userID)
	}
	return nil
}

// TransactionExistsByExternalID reports whether a feed transaction was
// already ingested, in any status
func (r *DonationRepository) TransactionExistsByExternalID(ctx context.Context, externalTxnID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM donation_transactions WHERE external_txn_id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, externalTxnID); err != nil {
		return false, fmt.Errorf("failed to check transaction existence: %w", err)
	}
	return exists, nil
}

// GetUserTransactions returns the user's donation transactions, newest first
func (r *DonationRepository) GetUserTransactions(ctx context.Context, userID uuid.UUID) ([]models.DonationTransaction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM donation_transactions
		WHERE user_id = $1
		ORDER BY transaction_date DESC, created_at DESC
	`, transactionColumns)

	var txns []models.DonationTransaction
	if err := r.db.SelectContext(ctx, &txns, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// GetTotalCompletedRoundUps returns the lifetime sum of completed round-up
// amounts. Direct donations also leave completed transactions here, but with
// a zero round-up, so they never count toward this total.
func (r *DonationRepository) GetTotalCompletedRoundUps(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(round_up_amount), 0)
		FROM donation_transactions
		WHERE user_id = $1 AND status = $2
	`
	var total decimal.Decimal
	if err := r.db.GetContext(ctx, &total, query, userID, models.DonationStatusCompleted); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum completed donations: %w", err)
	}
	return total, nil
}

// GetMonthToDateTotal returns the sum of completed transaction totals since
// the first day of the current calendar month (UTC), read through Redis
func (r *DonationRepository) GetMonthToDateTotal(ctx context.Context, userID uuid.UUID, now time.Time) (decimal.Decimal, error) {
	key := monthToDateKey(userID, now)
	if cached, err := r.cache.Get(ctx, key); err == nil {
		if total, parseErr := decimal.NewFromString(cached); parseErr == nil {
			return total, nil
		}
	}

	monthStart := time.Date(now.UTC().Year(), now.UTC().Month(), 1, 0, 0, 0, 0, time.UTC)
	query := `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM donation_transactions
		WHERE user_id = $1 AND status = $2 AND processed_at >= $3
	`
	var total decimal.Decimal
	if err := r.db.GetContext(ctx, &total, query, userID, models.DonationStatusCompleted, monthStart); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum month-to-date donations: %w", err)
	}

	if err := r.cache.Set(ctx, key, total.String(), monthToDateCacheTTL); err != nil {
		logger.Warn("Failed to cache month-to-date total", logger.Err(err))
	}
	return total, nil
}

func (r *DonationRepository) invalidateMonthToDate(ctx context.Context, userID uuid.UUID) {
	key := monthToDateKey(userID, time.Now().UTC())
	if err := r.cache.Delete(ctx, key); err != nil {
		logger.Warn("Failed to invalidate month-to-date cache",
			logger.String("key", key),
			logger.Err(err))
	}
}

func monthToDateKey(userID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("donations:mtd:%s:%s", userID, now.UTC().Format("2006-01"))
}

// isUniqueViolation reports a postgres unique-constraint error (class 23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
