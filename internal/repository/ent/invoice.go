package ent

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/ent"
	"github.com/rentdesk/rentdesk/ent/invoice"
	domainInvoice "github.com/rentdesk/rentdesk/internal/domain/invoice"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/postgres"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/samber/lo"
)

type invoiceRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewInvoiceRepository(client postgres.IClient, log *logger.Logger) domainInvoice.Repository {
	return &invoiceRepository{
		client: client,
		log:    log,
	}
}

func (r *invoiceRepository) Create(ctx context.Context, inv *domainInvoice.Invoice) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating invoice",
		"invoice_id", inv.ID,
		"account_id", inv.AccountID,
		"tenant_id", inv.TenantID,
		"amount", inv.Amount,
	)

	created, err := client.Invoice.Create().
		SetID(inv.ID).
		SetTenantID(inv.TenantID).
		SetInvoiceNumber(inv.InvoiceNumber).
		SetInvoiceStatus(string(inv.InvoiceStatus)).
		SetAmount(inv.Amount).
		SetAmountPaid(inv.AmountPaid).
		SetCurrency(inv.Currency).
		SetNillableDueDate(inv.DueDate).
		SetNillablePaidAt(inv.PaidAt).
		SetDescription(inv.Description).
		SetAccountID(inv.AccountID).
		SetStatus(string(inv.Status)).
		SetCreatedAt(inv.CreatedAt).
		SetUpdatedAt(inv.UpdatedAt).
		SetCreatedBy(inv.CreatedBy).
		SetUpdatedBy(inv.UpdatedBy).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create invoice").
			WithReportableDetails(map[string]interface{}{
				"invoice_id": inv.ID,
				"tenant_id":  inv.TenantID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*inv = *domainInvoice.FromEnt(created)
	return nil
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*domainInvoice.Invoice, error) {
	client := r.client.Querier(ctx)

	inv, err := client.Invoice.Query().
		Where(
			invoice.ID(id),
			invoice.AccountID(types.GetAccountID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Invoice not found").
				WithReportableDetails(map[string]interface{}{
					"invoice_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve invoice").
			Mark(ierr.ErrDatabase)
	}

	return domainInvoice.FromEnt(inv), nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *domainInvoice.Invoice) error {
	client := r.client.Querier(ctx)

	n, err := client.Invoice.Update().
		Where(
			invoice.ID(inv.ID),
			invoice.AccountID(types.GetAccountID(ctx)),
		).
		SetInvoiceStatus(string(inv.InvoiceStatus)).
		SetAmount(inv.Amount).
		SetAmountPaid(inv.AmountPaid).
		SetNillableDueDate(inv.DueDate).
		SetNillablePaidAt(inv.PaidAt).
		SetDescription(inv.Description).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update invoice").
			WithReportableDetails(map[string]interface{}{
				"invoice_id": inv.ID,
			}).
			Mark(ierr.ErrDatabase)
	}
	if n == 0 {
		return ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			WithReportableDetails(map[string]interface{}{
				"invoice_id": inv.ID,
			}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *invoiceRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	n, err := client.Invoice.Update().
		Where(
			invoice.ID(id),
			invoice.AccountID(types.GetAccountID(ctx)),
		).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete invoice").
			Mark(ierr.ErrDatabase)
	}
	if n == 0 {
		return ierr.NewError("invoice not found").
			WithHint("Invoice not found").
			WithReportableDetails(map[string]interface{}{
				"invoice_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) ([]*domainInvoice.Invoice, error) {
	if filter == nil {
		filter = &types.InvoiceFilter{
			QueryFilter: types.NewDefaultQueryFilter(),
		}
	}

	client := r.client.Querier(ctx)

	query := r.applyFilter(ctx, client.Invoice.Query(), filter)

	if filter.GetOrder() == types.OrderAsc {
		query = query.Order(ent.Asc(r.sortField(filter)))
	} else {
		query = query.Order(ent.Desc(r.sortField(filter)))
	}

	if !filter.IsUnlimited() {
		query = query.
			Limit(filter.GetLimit()).
			Offset(filter.GetOffset())
	}

	invoices, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}

	return domainInvoice.FromEntList(invoices), nil
}

func (r *invoiceRepository) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	client := r.client.Querier(ctx)

	count, err := r.applyFilter(ctx, client.Invoice.Query(), filter).Count(ctx)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count invoices").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}

// MarkPaid performs a conditional update guarded on the invoice not already
// being paid. Concurrent reconcilers race on this update; exactly one sees a
// row count of 1.
func (r *invoiceRepository) MarkPaid(ctx context.Context, id string, paid domainInvoice.PaidDetails) (int, error) {
	client := r.client.Querier(ctx)

	n, err := client.Invoice.Update().
		Where(
			invoice.ID(id),
			invoice.AccountID(types.GetAccountID(ctx)),
			invoice.InvoiceStatusIn(
				string(types.InvoiceStatusSent),
				string(types.InvoiceStatusOverdue),
			),
		).
		SetInvoiceStatus(string(types.InvoiceStatusPaid)).
		SetAmountPaid(paid.AmountPaid).
		SetPaidAt(paid.PaidAt).
		SetPaymentMethod(paid.PaymentMethod).
		SetPaymentReference(paid.PaymentRef).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to mark invoice as paid").
			WithReportableDetails(map[string]interface{}{
				"invoice_id": id,
			}).
			Mark(ierr.ErrDatabase)
	}

	return n, nil
}

// MarkOverdue flips sent invoices past their due date to overdue. The status
// predicate means paid invoices can never regress.
func (r *invoiceRepository) MarkOverdue(ctx context.Context, before time.Time) (int, error) {
	client := r.client.Querier(ctx)

	n, err := client.Invoice.Update().
		Where(
			invoice.AccountID(types.GetAccountID(ctx)),
			invoice.InvoiceStatusEQ(string(types.InvoiceStatusSent)),
			invoice.DueDateLT(before),
			invoice.StatusNEQ(string(types.StatusDeleted)),
		).
		SetInvoiceStatus(string(types.InvoiceStatusOverdue)).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)

	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to mark invoices as overdue").
			Mark(ierr.ErrDatabase)
	}

	return n, nil
}

func (r *invoiceRepository) applyFilter(ctx context.Context, query *ent.InvoiceQuery, filter *types.InvoiceFilter) *ent.InvoiceQuery {
	query = query.Where(invoice.AccountID(types.GetAccountID(ctx)))

	if filter == nil {
		return query.Where(invoice.StatusNEQ(string(types.StatusDeleted)))
	}

	if filter.GetStatus() != "" {
		query = query.Where(invoice.Status(string(filter.GetStatus())))
	} else {
		query = query.Where(invoice.StatusNEQ(string(types.StatusDeleted)))
	}

	if len(filter.InvoiceIDs) > 0 {
		query = query.Where(invoice.IDIn(filter.InvoiceIDs...))
	}
	if filter.TenantID != "" {
		query = query.Where(invoice.TenantID(filter.TenantID))
	}
	if len(filter.InvoiceStatus) > 0 {
		statuses := lo.Map(filter.InvoiceStatus, func(s types.InvoiceStatus, _ int) string {
			return string(s)
		})
		query = query.Where(invoice.InvoiceStatusIn(statuses...))
	}
	if filter.Amount != nil {
		query = query.Where(invoice.AmountEQ(*filter.Amount))
	}
	if filter.DueBefore != nil {
		query = query.Where(invoice.DueDateLT(*filter.DueBefore))
	}
	if filter.DueAfter != nil {
		query = query.Where(invoice.DueDateGT(*filter.DueAfter))
	}
	if filter.TimeRangeFilter != nil {
		if filter.StartTime != nil {
			query = query.Where(invoice.CreatedAtGTE(*filter.StartTime))
		}
		if filter.EndTime != nil {
			query = query.Where(invoice.CreatedAtLTE(*filter.EndTime))
		}
	}

	return query
}

func (r *invoiceRepository) sortField(filter *types.InvoiceFilter) string {
	if filter.GetSort() != "" {
		return filter.GetSort()
	}
	return invoice.FieldCreatedAt
}
