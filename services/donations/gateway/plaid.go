package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/sparechange/roundup/internal/pkg/retry"
)

const feedDateLayout = "2006-01-02"

// defaultFeedTimeout bounds a feed call when no timeout is configured
const defaultFeedTimeout = 15 * time.Second

// PlaidGateway implements the donations.FeedGW interface against the Plaid
// transactions API
type PlaidGateway struct {
	cfg     *models.PlaidConfig
	client  *http.Client
	retrier *retry.Retrier
}

// feedStatusError carries a non-200 feed response so the retry predicate
// can distinguish server faults from request errors
type feedStatusError struct {
	status int
	body   string
}

func (e *feedStatusError) Error() string {
	return fmt.Sprintf("feed returned status %d: %s", e.status, e.body)
}

// NewPlaidGateway creates a new transaction feed gateway
func NewPlaidGateway(cfg *models.PlaidConfig) *PlaidGateway {
	retryCfg := retry.DefaultConfig()
	retryCfg.Retryable = feedErrorRetryable
	return &PlaidGateway{
		cfg:     cfg,
		client:  &http.Client{},
		retrier: retry.New(retryCfg),
	}
}

// feedErrorRetryable retries transport failures and server-side faults.
// Feed reads are idempotent, so repeating them is always safe; a timed-out
// attempt is not retried because the next sweep covers the same window.
func feedErrorRetryable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *feedStatusError
	if errors.As(err, &statusErr) {
		return statusErr.status >= http.StatusInternalServerError ||
			statusErr.status == http.StatusTooManyRequests
	}
	return true
}

func (g *PlaidGateway) timeout() time.Duration {
	if g.cfg.TimeoutSeconds > 0 {
		return time.Duration(g.cfg.TimeoutSeconds) * time.Second
	}
	return defaultFeedTimeout
}

// FetchTransactions pulls purchase transactions for the date window. The
// feed pages at 500 entries; windows here stay well below that, so a single
// request suffices.
func (g *PlaidGateway) FetchTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time) ([]models.ExternalTransaction, error) {
	reqBody := map[string]interface{}{
		"client_id":    g.cfg.ClientID,
		"secret":       g.cfg.Secret,
		"access_token": accessToken,
		"start_date":   startDate.Format(feedDateLayout),
		"end_date":     endDate.Format(feedDateLayout),
		"options": map[string]interface{}{
			"count": 500,
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal feed request: %w", err)
	}

	var body []byte
	err = g.retrier.Execute(ctx, func(ctx context.Context) error {
		// Each attempt gets its own deadline so a stalled feed can never
		// hold a sweep open past the configured bound
		callCtx, cancel := context.WithTimeout(ctx, g.timeout())
		defer cancel()

		httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, g.cfg.BaseURL+"/transactions/get", bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("failed to build feed request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(httpReq)
		if err != nil {
			return fmt.Errorf("feed request failed: %w", err)
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read feed response: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return &feedStatusError{status: resp.StatusCode, body: string(body)}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var feedResp struct {
		Transactions []struct {
			TransactionID string          `json:"transaction_id"`
			Amount        decimal.Decimal `json:"amount"`
			Name          string          `json:"name"`
			Date          string          `json:"date"`
			Category      []string        `json:"category"`
			Pending       bool            `json:"pending"`
		} `json:"transactions"`
	}
	if err := json.Unmarshal(body, &feedResp); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	txns := make([]models.ExternalTransaction, 0, len(feedResp.Transactions))
	for _, t := range feedResp.Transactions {
		// Pending feed entries can still change amount or disappear
		if t.Pending {
			continue
		}
		date, err := time.Parse(feedDateLayout, t.Date)
		if err != nil {
			continue
		}
		category := ""
		if len(t.Category) > 0 {
			category = t.Category[0]
		}
		txns = append(txns, models.ExternalTransaction{
			ExternalID:   t.TransactionID,
			Amount:       t.Amount,
			MerchantName: t.Name,
			Date:         date,
			Category:     category,
		})
	}
	return txns, nil
}
