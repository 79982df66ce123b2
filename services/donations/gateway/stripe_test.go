package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chargeRequest() *models.ChargeRequest {
	return &models.ChargeRequest{
		Amount:        decimal.RequireFromString("4.35"),
		Currency:      "usd",
		CustomerRef:   "cus_123",
		InstrumentRef: "pm_card_visa",
		Description:   "Direct donation to Ocean Cleanup",
		Metadata:      map[string]string{"donation_id": "d-1"},
	}
}

func TestCreateCardPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "435", r.PostFormValue("amount"))
		assert.Equal(t, "usd", r.PostFormValue("currency"))
		assert.Equal(t, "cus_123", r.PostFormValue("customer"))
		assert.Equal(t, "pm_card_visa", r.PostFormValue("payment_method"))
		assert.Equal(t, "true", r.PostFormValue("confirm"))
		assert.Equal(t, "d-1", r.PostFormValue("metadata[donation_id]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "pi_123", "status": "succeeded"}`))
	}))
	defer srv.Close()

	gw := NewStripeGateway(&models.StripeConfig{SecretKey: "sk_test_123", BaseURL: srv.URL})
	result, err := gw.CreateCardPayment(context.Background(), chargeRequest())
	require.NoError(t, err)
	assert.Equal(t, models.ProcessorStatusSucceeded, result.Status)
	assert.Equal(t, "pi_123", result.ProcessorRef)
}

func TestCreateCardPaymentDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"code": "card_declined", "message": "Your card was declined."}}`))
	}))
	defer srv.Close()

	gw := NewStripeGateway(&models.StripeConfig{SecretKey: "sk_test_123", BaseURL: srv.URL})
	_, err := gw.CreateCardPayment(context.Background(), chargeRequest())
	require.Error(t, err)

	var procErr *models.ProcessorError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, "card_declined", procErr.Code)
	assert.Equal(t, "Your card was declined.", procErr.Message)
}

func TestCreateBankPaymentProcessing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "us_bank_account", r.PostFormValue("payment_method_types[]"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "pi_ach", "status": "processing"}`))
	}))
	defer srv.Close()

	gw := NewStripeGateway(&models.StripeConfig{SecretKey: "sk_test_123", BaseURL: srv.URL})
	result, err := gw.CreateBankPayment(context.Background(), chargeRequest())
	require.NoError(t, err)
	assert.Equal(t, models.ProcessorStatusProcessing, result.Status)
}

func TestCreateBankChargeUsesLegacyEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/charges", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, simulatedBankToken, r.PostFormValue("source"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "ch_456", "paid": true}`))
	}))
	defer srv.Close()

	gw := NewStripeGateway(&models.StripeConfig{SecretKey: "sk_test_123", BaseURL: srv.URL})
	result, err := gw.CreateBankCharge(context.Background(), chargeRequest())
	require.NoError(t, err)
	assert.Equal(t, models.ProcessorStatusSucceeded, result.Status)
	assert.Equal(t, "ch_456", result.ProcessorRef)
}

func TestDecodeProcessorErrorFallback(t *testing.T) {
	err := decodeProcessorError(http.StatusBadGateway, []byte("upstream timeout"))

	var procErr *models.ProcessorError
	require.True(t, errors.As(err, &procErr))
	assert.Equal(t, "502", procErr.Code)
}
