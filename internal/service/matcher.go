package service

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/api/dto"
	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// MatchResult is the outcome of an invoice match attempt. A nil Invoice with
// a nil error means no invoice qualified; CandidateCount reports how many did
// so ambiguity is visible to callers even in lenient mode.
type MatchResult struct {
	Invoice        *invoice.Invoice
	CandidateCount int
}

// NoMatch reports whether the match attempt found no qualifying invoice
func (r *MatchResult) NoMatch() bool {
	return r.Invoice == nil
}

// InvoiceMatcherService finds the best candidate open invoice for a payment
// event. The heuristic is amount equality plus recency: among invoices in
// sent or overdue status with the exact event amount, the most recently
// created wins. Two tenants owing the same amount concurrently can therefore
// be misattributed; strict matching turns that case into an error instead of
// a silent pick.
type InvoiceMatcherService interface {
	Match(ctx context.Context, event *dto.PaymentEvent) (*MatchResult, error)
}

type invoiceMatcherService struct {
	ServiceParams
}

// NewInvoiceMatcherService creates a new invoice matcher service
func NewInvoiceMatcherService(params ServiceParams) InvoiceMatcherService {
	return &invoiceMatcherService{
		ServiceParams: params,
	}
}

func (s *invoiceMatcherService) Match(ctx context.Context, event *dto.PaymentEvent) (*MatchResult, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	filter := &types.InvoiceFilter{
		QueryFilter:   types.NewNoLimitQueryFilter(),
		InvoiceStatus: types.MatchableInvoiceStatuses(),
		Amount:        &event.Amount,
	}

	candidates, err := s.InvoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := &MatchResult{CandidateCount: len(candidates)}

	if len(candidates) == 0 {
		s.Logger.Infow("no invoice matched payment event",
			"amount", event.Amount,
			"external_id", event.ExternalID,
		)
		return result, nil
	}

	if len(candidates) > 1 {
		s.Logger.Warnw("multiple invoices match payment event",
			"amount", event.Amount,
			"external_id", event.ExternalID,
			"candidate_count", len(candidates),
		)
		if s.Config.Reconciliation.StrictMatching {
			return nil, ierr.NewError("multiple invoices match payment amount").
				WithHintf("%d open invoices have amount %s; manual reconciliation required", len(candidates), event.Amount).
				WithReportableDetails(map[string]interface{}{
					"candidate_count": len(candidates),
					"amount":          event.Amount,
					"external_id":     event.ExternalID,
				}).
				Mark(ierr.ErrAmbiguousMatch)
		}
	}

	// List is ordered created_at descending, so the first candidate is the
	// most recent.
	result.Invoice = candidates[0]
	return result, nil
}
