package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedResponseBody = `{
	"transactions": [
		{"transaction_id": "txn_1", "amount": 4.35, "name": "Coffee Shop", "date": "2026-08-20", "category": ["Food and Drink"], "pending": false},
		{"transaction_id": "txn_2", "amount": 12.10, "name": "Grocer", "date": "2026-08-21", "pending": true},
		{"transaction_id": "txn_3", "amount": 7.50, "name": "Bookstore", "date": "not-a-date", "pending": false}
	]
}`

func TestFetchTransactions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/get", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "client_abc", req["client_id"])
		assert.Equal(t, "access-token-1", req["access_token"])
		assert.Equal(t, "2026-08-01", req["start_date"])
		assert.Equal(t, "2026-08-28", req["end_date"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedResponseBody))
	}))
	defer srv.Close()

	gw := NewPlaidGateway(&models.PlaidConfig{ClientID: "client_abc", Secret: "s", BaseURL: srv.URL})
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	txns, err := gw.FetchTransactions(context.Background(), "access-token-1", start, end)
	require.NoError(t, err)

	// Pending and unparseable entries are dropped
	require.Len(t, txns, 1)
	assert.Equal(t, "txn_1", txns[0].ExternalID)
	assert.Equal(t, "Coffee Shop", txns[0].MerchantName)
	assert.Equal(t, "Food and Drink", txns[0].Category)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("4.35")))
}

func TestFetchTransactionsTimesOut(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		// Drain the body so the server notices the client disconnect and
		// cancels the request context
		io.Copy(io.Discard, r.Body)
		// Stall until the client gives up
		<-r.Context().Done()
	}))
	defer srv.Close()

	gw := NewPlaidGateway(&models.PlaidConfig{ClientID: "c", Secret: "s", BaseURL: srv.URL, TimeoutSeconds: 1})
	started := time.Now()
	_, err := gw.FetchTransactions(context.Background(), "tok", time.Now().AddDate(0, 0, -7), time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(started), 3*time.Second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchTransactionsRetriesServerFaults(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transactions": []}`))
	}))
	defer srv.Close()

	gw := NewPlaidGateway(&models.PlaidConfig{ClientID: "c", Secret: "s", BaseURL: srv.URL})
	txns, err := gw.FetchTransactions(context.Background(), "tok", time.Now().AddDate(0, 0, -7), time.Now())
	require.NoError(t, err)
	assert.Empty(t, txns)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchTransactionsDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_code": "INVALID_ACCESS_TOKEN"}`))
	}))
	defer srv.Close()

	gw := NewPlaidGateway(&models.PlaidConfig{ClientID: "c", Secret: "s", BaseURL: srv.URL})
	_, err := gw.FetchTransactions(context.Background(), "tok", time.Now().AddDate(0, 0, -7), time.Now())
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
