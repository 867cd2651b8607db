package dto

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest creates a draft invoice for a tenant
type CreateInvoiceRequest struct {
	TenantID    string          `json:"tenant_id" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency"`
	DueDate     *time.Time      `json:"due_date,omitempty"`
	Description string          `json:"description,omitempty"`
}

// Validate validates the request
func (r *CreateInvoiceRequest) Validate() error {
	if r.Amount.IsZero() || r.Amount.IsNegative() {
		return ierr.NewError("invalid amount").
			WithHint("Amount must be greater than 0").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToInvoice converts the request to a domain invoice
func (r *CreateInvoiceRequest) ToInvoice(ctx context.Context) *invoice.Invoice {
	currency := r.Currency
	if currency == "" {
		currency = "KES"
	}
	return &invoice.Invoice{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
		TenantID:      r.TenantID,
		InvoiceNumber: types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_RECEIPT),
		InvoiceStatus: types.InvoiceStatusDraft,
		Amount:        r.Amount,
		AmountPaid:    decimal.Zero,
		Currency:      currency,
		DueDate:       r.DueDate,
		Description:   r.Description,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	*invoice.Invoice
}

// ListInvoicesResponse represents a paginated list of invoices
type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]
