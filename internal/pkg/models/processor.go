package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Processor payment statuses as returned by the payment processor
const (
	ProcessorStatusSucceeded  = "succeeded"
	ProcessorStatusProcessing = "processing"
)

// ChargeRequest is the input to a processor funds-movement call. Amount is in
// currency units; gateways convert to the processor's minor-unit integer.
type ChargeRequest struct {
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	CustomerRef   string            `json:"customer_ref"`
	InstrumentRef string            `json:"instrument_ref"`
	Kind          string            `json:"kind"`
	Description   string            `json:"description"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// ChargeResult is the processor's answer to a funds-movement call
type ChargeResult struct {
	Status       string `json:"status"`
	ProcessorRef string `json:"processor_ref"`
}

// ProcessorError is a processor-level failure carrying the machine-readable
// code and message the processor returned. Expected declines surface as this
// type so fallback handling stays ordinary control flow.
type ProcessorError struct {
	Code    string
	Message string
}

func (e *ProcessorError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("processor error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("processor error: %s", e.Message)
}
