package invoice

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
)

// Repository defines the interface for invoice persistence
type Repository interface {
	Create(ctx context.Context, invoice *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	Update(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *types.InvoiceFilter) ([]*Invoice, error)
	Count(ctx context.Context, filter *types.InvoiceFilter) (int, error)

	// MarkPaid transitions the invoice to paid with a conditional update
	// guarded on the current status not already being paid. Returns the
	// number of rows updated so callers can detect a lost race.
	MarkPaid(ctx context.Context, id string, paid PaidDetails) (int, error)

	// MarkOverdue transitions sent invoices past their due date to overdue.
	// Paid invoices are never touched. Returns the number of rows updated.
	MarkOverdue(ctx context.Context, before time.Time) (int, error)
}

// PaidDetails captures how an invoice was settled
type PaidDetails struct {
	AmountPaid    decimal.Decimal
	PaidAt        time.Time
	PaymentMethod string
	PaymentRef    string
}
