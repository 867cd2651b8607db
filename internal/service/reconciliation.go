package service

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/internal/api/dto"
	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	"github.com/rentdesk/rentdesk/internal/domain/payment"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/idempotency"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/samber/lo"
)

// ReconciliationService applies inbound payment events to open invoices.
// Processing is transactional and idempotent on the event's external id:
// redelivered webhooks return the stored outcome instead of double-applying.
type ReconciliationService interface {
	ProcessPayment(ctx context.Context, event *dto.PaymentEvent) (*dto.ReconciliationResponse, error)

	GetTransaction(ctx context.Context, id string) (*payment.Transaction, error)
	ListTransactions(ctx context.Context, filter *types.TransactionFilter) ([]*payment.Transaction, error)

	// ListUnlinked returns completed transactions that no invoice claimed,
	// for manual reconciliation
	ListUnlinked(ctx context.Context) ([]*payment.Transaction, error)
}

type reconciliationService struct {
	ServiceParams
	matcher  InvoiceMatcherService
	notifier NotificationService
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(params ServiceParams, matcher InvoiceMatcherService, notifier NotificationService) ReconciliationService {
	return &reconciliationService{
		ServiceParams: params,
		matcher:       matcher,
		notifier:      notifier,
	}
}

func (s *reconciliationService) ProcessPayment(ctx context.Context, event *dto.PaymentEvent) (*dto.ReconciliationResponse, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	key := s.IdempotencyGn.GenerateKey(idempotency.ScopePayment, map[string]interface{}{
		"external_id": event.ExternalID,
	})

	// Replay check before opening a transaction. The unique constraint on
	// the idempotency key is the authoritative guard; this read just makes
	// the common redelivery case cheap.
	if existing, err := s.PaymentRepo.GetByIdempotencyKey(ctx, key); err == nil {
		return s.replayResponse(ctx, existing)
	} else if !ierr.IsNotFound(err) {
		return nil, err
	}

	var (
		txn            *payment.Transaction
		matched        *invoice.Invoice
		candidateCount int
		ambiguousErr   error
	)

	err := s.DB.WithTx(ctx, func(txCtx context.Context) error {
		txn = s.buildTransaction(txCtx, event, key)
		if err := s.PaymentRepo.Create(txCtx, txn); err != nil {
			return err
		}

		result, err := s.matcher.Match(txCtx, event)
		if err != nil {
			if ierr.IsAmbiguousMatch(err) {
				// The transaction stays recorded and unlinked; the error is
				// surfaced after commit so nothing is lost.
				ambiguousErr = err
				return nil
			}
			return err
		}
		candidateCount = result.CandidateCount

		if result.NoMatch() {
			return nil
		}

		paidAt := time.Now().UTC()
		if event.PaidAt != nil {
			paidAt = *event.PaidAt
		}

		n, err := s.InvoiceRepo.MarkPaid(txCtx, result.Invoice.ID, invoice.PaidDetails{
			AmountPaid:    event.Amount,
			PaidAt:        paidAt,
			PaymentMethod: string(event.Method),
			PaymentRef:    event.ExternalID,
		})
		if err != nil {
			return err
		}
		if n == 0 {
			// Lost the race to a concurrent reconciler. The invoice is
			// already paid; keep this transaction unlinked.
			s.Logger.Warnw("invoice already paid, leaving transaction unlinked",
				"invoice_id", result.Invoice.ID,
				"transaction_id", txn.ID,
				"external_id", event.ExternalID,
			)
			return nil
		}

		txn.InvoiceID = lo.ToPtr(result.Invoice.ID)
		if err := s.PaymentRepo.Update(txCtx, txn); err != nil {
			return err
		}

		updated, err := s.InvoiceRepo.Get(txCtx, result.Invoice.ID)
		if err != nil {
			return err
		}
		matched = updated
		return nil
	})

	if err != nil {
		// A concurrent delivery of the same event can beat us to the insert.
		if ierr.IsAlreadyExists(err) {
			if existing, gerr := s.PaymentRepo.GetByIdempotencyKey(ctx, key); gerr == nil {
				return s.replayResponse(ctx, existing)
			}
		}
		return nil, err
	}

	if ambiguousErr != nil {
		return nil, ambiguousErr
	}

	s.Logger.Infow("payment reconciled",
		"transaction_id", txn.ID,
		"external_id", event.ExternalID,
		"amount", event.Amount,
		"matched", matched != nil,
		"candidate_count", candidateCount,
	)

	// Notification failures never unwind a committed reconciliation.
	if matched != nil {
		s.notifier.SendPaymentConfirmation(ctx, matched, txn)
	}

	return dto.NewReconciliationResponse(txn, matched, candidateCount, false), nil
}

func (s *reconciliationService) GetTransaction(ctx context.Context, id string) (*payment.Transaction, error) {
	return s.PaymentRepo.Get(ctx, id)
}

func (s *reconciliationService) ListTransactions(ctx context.Context, filter *types.TransactionFilter) ([]*payment.Transaction, error) {
	if filter == nil {
		filter = &types.TransactionFilter{QueryFilter: types.NewDefaultQueryFilter()}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.PaymentRepo.List(ctx, filter)
}

func (s *reconciliationService) ListUnlinked(ctx context.Context) ([]*payment.Transaction, error) {
	filter := types.NewNoLimitTransactionFilter()
	filter.Unlinked = lo.ToPtr(true)
	return s.PaymentRepo.List(ctx, filter)
}

func (s *reconciliationService) buildTransaction(ctx context.Context, event *dto.PaymentEvent, key string) *payment.Transaction {
	return &payment.Transaction{
		ID:                types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TRANSACTION),
		IdempotencyKey:    key,
		ExternalID:        event.ExternalID,
		PaymentMethod:     event.Method,
		TransactionStatus: types.TransactionStatusCompleted,
		Amount:            event.Amount,
		Currency:          "KES",
		PayerPhone:        event.PayerPhone,
		PayerName:         event.PayerName,
		PaidAt:            event.PaidAt,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}

func (s *reconciliationService) replayResponse(ctx context.Context, txn *payment.Transaction) (*dto.ReconciliationResponse, error) {
	var matched *invoice.Invoice
	if txn.IsLinked() {
		inv, err := s.InvoiceRepo.Get(ctx, *txn.InvoiceID)
		if err != nil && !ierr.IsNotFound(err) {
			return nil, err
		}
		matched = inv
	}

	s.Logger.Infow("replayed payment event",
		"transaction_id", txn.ID,
		"external_id", txn.ExternalID,
	)

	return dto.NewReconciliationResponse(txn, matched, 0, true), nil
}
