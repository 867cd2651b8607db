package ent

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/ent"
	"github.com/rentdesk/rentdesk/ent/paymenttransaction"
	domainPayment "github.com/rentdesk/rentdesk/internal/domain/payment"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/postgres"
	"github.com/rentdesk/rentdesk/internal/types"
)

type paymentRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewPaymentRepository(client postgres.IClient, log *logger.Logger) domainPayment.Repository {
	return &paymentRepository{
		client: client,
		log:    log,
	}
}

func (r *paymentRepository) Create(ctx context.Context, t *domainPayment.Transaction) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating payment transaction",
		"transaction_id", t.ID,
		"account_id", t.AccountID,
		"external_id", t.ExternalID,
		"amount", t.Amount,
	)

	created, err := client.PaymentTransaction.Create().
		SetID(t.ID).
		SetIdempotencyKey(t.IdempotencyKey).
		SetExternalID(t.ExternalID).
		SetNillableInvoiceID(t.InvoiceID).
		SetPaymentMethod(string(t.PaymentMethod)).
		SetTransactionStatus(string(t.TransactionStatus)).
		SetAmount(t.Amount).
		SetCurrency(t.Currency).
		SetPayerPhone(t.PayerPhone).
		SetPayerName(t.PayerName).
		SetNillablePaidAt(t.PaidAt).
		SetMetadata(t.Metadata).
		SetAccountID(t.AccountID).
		SetStatus(string(t.Status)).
		SetCreatedAt(t.CreatedAt).
		SetUpdatedAt(t.UpdatedAt).
		SetCreatedBy(t.CreatedBy).
		SetUpdatedBy(t.UpdatedBy).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("Payment transaction already recorded").
				WithReportableDetails(map[string]interface{}{
					"external_id":     t.ExternalID,
					"idempotency_key": t.IdempotencyKey,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create payment transaction").
			WithReportableDetails(map[string]interface{}{
				"transaction_id": t.ID,
				"external_id":    t.ExternalID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*t = *domainPayment.FromEnt(created)
	return nil
}

func (r *paymentRepository) Get(ctx context.Context, id string) (*domainPayment.Transaction, error) {
	client := r.client.Querier(ctx)

	t, err := client.PaymentTransaction.Query().
		Where(
			paymenttransaction.ID(id),
			paymenttransaction.AccountID(types.GetAccountID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Payment transaction not found").
				WithReportableDetails(map[string]interface{}{
					"transaction_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve payment transaction").
			Mark(ierr.ErrDatabase)
	}

	return domainPayment.FromEnt(t), nil
}

func (r *paymentRepository) Update(ctx context.Context, t *domainPayment.Transaction) error {
	client := r.client.Querier(ctx)

	n, err := client.PaymentTransaction.Update().
		Where(
			paymenttransaction.ID(t.ID),
			paymenttransaction.AccountID(types.GetAccountID(ctx)),
		).
		SetNillableInvoiceID(t.InvoiceID).
		SetTransactionStatus(string(t.TransactionStatus)).
		SetMetadata(t.Metadata).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update payment transaction").
			WithReportableDetails(map[string]interface{}{
				"transaction_id": t.ID,
			}).
			Mark(ierr.ErrDatabase)
	}
	if n == 0 {
		return ierr.NewError("payment transaction not found").
			WithHint("Payment transaction not found").
			WithReportableDetails(map[string]interface{}{
				"transaction_id": t.ID,
			}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *paymentRepository) List(ctx context.Context, filter *types.TransactionFilter) ([]*domainPayment.Transaction, error) {
	if filter == nil {
		filter = &types.TransactionFilter{
			QueryFilter: types.NewDefaultQueryFilter(),
		}
	}

	client := r.client.Querier(ctx)

	query := r.applyFilter(ctx, client.PaymentTransaction.Query(), filter)

	if filter.GetOrder() == types.OrderAsc {
		query = query.Order(ent.Asc(paymenttransaction.FieldCreatedAt))
	} else {
		query = query.Order(ent.Desc(paymenttransaction.FieldCreatedAt))
	}

	if !filter.IsUnlimited() {
		query = query.
			Limit(filter.GetLimit()).
			Offset(filter.GetOffset())
	}

	transactions, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list payment transactions").
			Mark(ierr.ErrDatabase)
	}

	return domainPayment.FromEntList(transactions), nil
}

func (r *paymentRepository) Count(ctx context.Context, filter *types.TransactionFilter) (int, error) {
	client := r.client.Querier(ctx)

	count, err := r.applyFilter(ctx, client.PaymentTransaction.Query(), filter).Count(ctx)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count payment transactions").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}

// GetByIdempotencyKey is the replay check for webhook redelivery. Lookup is
// account scoped like every other read.
func (r *paymentRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domainPayment.Transaction, error) {
	client := r.client.Querier(ctx)

	t, err := client.PaymentTransaction.Query().
		Where(
			paymenttransaction.IdempotencyKey(key),
			paymenttransaction.AccountID(types.GetAccountID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Payment transaction not found").
				WithReportableDetails(map[string]interface{}{
					"idempotency_key": key,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve payment transaction").
			Mark(ierr.ErrDatabase)
	}

	return domainPayment.FromEnt(t), nil
}

func (r *paymentRepository) applyFilter(ctx context.Context, query *ent.PaymentTransactionQuery, filter *types.TransactionFilter) *ent.PaymentTransactionQuery {
	query = query.Where(paymenttransaction.AccountID(types.GetAccountID(ctx)))

	if filter == nil {
		return query
	}

	if len(filter.TransactionIDs) > 0 {
		query = query.Where(paymenttransaction.IDIn(filter.TransactionIDs...))
	}
	if filter.InvoiceID != nil {
		query = query.Where(paymenttransaction.InvoiceID(*filter.InvoiceID))
	}
	if filter.PaymentMethod != nil {
		query = query.Where(paymenttransaction.PaymentMethod(string(*filter.PaymentMethod)))
	}
	if filter.TransactionStatus != nil {
		query = query.Where(paymenttransaction.TransactionStatus(string(*filter.TransactionStatus)))
	}
	if filter.Unlinked != nil {
		if *filter.Unlinked {
			query = query.Where(paymenttransaction.InvoiceIDIsNil())
		} else {
			query = query.Where(paymenttransaction.InvoiceIDNotNil())
		}
	}

	return query
}
