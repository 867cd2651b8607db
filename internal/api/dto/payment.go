package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	"github.com/rentdesk/rentdesk/internal/domain/payment"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// WebhookPaymentRequest is the raw payload delivered by a payment gateway.
// The paymentData shape differs per source; normalization happens in
// ToPaymentEvent.
type WebhookPaymentRequest struct {
	PaymentData json.RawMessage `json:"paymentData" binding:"required"`
	Source      string          `json:"source" binding:"required"`
}

// mpesaPayload is the subset of the M-Pesa C2B confirmation payload we use
type mpesaPayload struct {
	TransID     string          `json:"TransID"`
	TransAmount decimal.Decimal `json:"TransAmount"`
	TransTime   string          `json:"TransTime"`
	MSISDN      string          `json:"MSISDN"`
	FirstName   string          `json:"FirstName"`
	LastName    string          `json:"LastName"`
}

// kcbPayload is the subset of the KCB Buni transfer notification we use
type kcbPayload struct {
	TransactionReference string          `json:"transactionReference"`
	Amount               decimal.Decimal `json:"amount"`
	PhoneNumber          string          `json:"phoneNumber"`
	CustomerName         string          `json:"customerName"`
	TransactionDate      string          `json:"transactionDate"`
}

// PaymentEvent is a normalized inbound payment event
type PaymentEvent struct {
	Amount     decimal.Decimal     `json:"amount"`
	Method     types.PaymentMethod `json:"method"`
	ExternalID string              `json:"external_id"`
	PayerPhone string              `json:"payer_phone,omitempty"`
	PayerName  string              `json:"payer_name,omitempty"`
	PaidAt     *time.Time          `json:"paid_at,omitempty"`
}

// Validate validates the normalized event
func (e *PaymentEvent) Validate() error {
	if e.ExternalID == "" {
		return ierr.NewError("missing external id").
			WithHint("Payment event must carry the gateway transaction reference").
			Mark(ierr.ErrValidation)
	}
	if e.Amount.IsZero() || e.Amount.IsNegative() {
		return ierr.NewError("invalid amount").
			WithHint("Payment amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	return e.Method.Validate()
}

// ToPaymentEvent normalizes the gateway-specific payload into a PaymentEvent
func (r *WebhookPaymentRequest) ToPaymentEvent() (*PaymentEvent, error) {
	switch types.PaymentMethod(strings.ToLower(r.Source)) {
	case types.PaymentMethodMpesa:
		var p mpesaPayload
		if err := json.Unmarshal(r.PaymentData, &p); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Malformed mpesa payment data").
				Mark(ierr.ErrValidation)
		}
		event := &PaymentEvent{
			Amount:     p.TransAmount,
			Method:     types.PaymentMethodMpesa,
			ExternalID: p.TransID,
			PayerPhone: p.MSISDN,
			PayerName:  strings.TrimSpace(p.FirstName + " " + p.LastName),
		}
		if t, err := time.Parse("20060102150405", p.TransTime); err == nil {
			event.PaidAt = &t
		}
		return event, event.Validate()
	case types.PaymentMethodKCB:
		var p kcbPayload
		if err := json.Unmarshal(r.PaymentData, &p); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Malformed kcb payment data").
				Mark(ierr.ErrValidation)
		}
		event := &PaymentEvent{
			Amount:     p.Amount,
			Method:     types.PaymentMethodKCB,
			ExternalID: p.TransactionReference,
			PayerPhone: p.PhoneNumber,
			PayerName:  p.CustomerName,
		}
		if t, err := time.Parse(time.RFC3339, p.TransactionDate); err == nil {
			event.PaidAt = &t
		}
		return event, event.Validate()
	default:
		return nil, ierr.NewError("unsupported payment source").
			WithHintf("Payment source %q is not supported", r.Source).
			Mark(ierr.ErrValidation)
	}
}

// TransactionResponse represents a payment transaction in API responses
type TransactionResponse struct {
	*payment.Transaction
}

// ReconciliationResponse is returned by the payment webhook endpoint
type ReconciliationResponse struct {
	Success        bool                 `json:"success"`
	Transaction    *TransactionResponse `json:"transaction"`
	MatchedInvoice *InvoiceResponse     `json:"matchedInvoice"`
	// Replayed is true when the event was already processed and the stored
	// result is being returned
	Replayed bool `json:"replayed,omitempty"`
	// CandidateCount surfaces how many invoices matched the heuristic
	CandidateCount int `json:"candidate_count,omitempty"`
}

// NewReconciliationResponse builds the webhook response
func NewReconciliationResponse(txn *payment.Transaction, matched *invoice.Invoice, candidates int, replayed bool) *ReconciliationResponse {
	resp := &ReconciliationResponse{
		Success:        true,
		Transaction:    &TransactionResponse{Transaction: txn},
		Replayed:       replayed,
		CandidateCount: candidates,
	}
	if matched != nil {
		resp.MatchedInvoice = &InvoiceResponse{Invoice: matched}
	}
	return resp
}

// ListTransactionsResponse represents a paginated list of transactions
type ListTransactionsResponse = types.ListResponse[*TransactionResponse]
