package service

import (
	"testing"
	"time"

	"github.com/rentdesk/rentdesk/internal/api/dto"
	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/testutil"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvoiceMatcherSuite struct {
	testutil.BaseServiceTestSuite
	service InvoiceMatcherService
}

func TestInvoiceMatcherService(t *testing.T) {
	suite.Run(t, new(InvoiceMatcherSuite))
}

func (s *InvoiceMatcherSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInvoiceMatcherService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		DB:          s.GetDB(),
		InvoiceRepo: s.GetStores().InvoiceRepo,
	})
}

func (s *InvoiceMatcherSuite) createInvoice(id string, amount int64, status types.InvoiceStatus, age time.Duration) *invoice.Invoice {
	inv := &invoice.Invoice{
		ID:            id,
		TenantID:      "tnt_matcher",
		InvoiceStatus: status,
		Amount:        decimal.NewFromInt(amount),
		Currency:      "KES",
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	inv.CreatedAt = s.GetNow().Add(-age)
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), inv))
	return inv
}

func (s *InvoiceMatcherSuite) event(amount int64) *dto.PaymentEvent {
	return &dto.PaymentEvent{
		Amount:     decimal.NewFromInt(amount),
		Method:     types.PaymentMethodMpesa,
		ExternalID: "MT1",
	}
}

func (s *InvoiceMatcherSuite) TestMatchExactAmount() {
	want := s.createInvoice("inv_m1", 25000, types.InvoiceStatusSent, time.Hour)
	s.createInvoice("inv_m2", 18000, types.InvoiceStatusSent, time.Hour)

	result, err := s.service.Match(s.GetContext(), s.event(25000))
	s.NoError(err)
	s.False(result.NoMatch())
	s.Equal(want.ID, result.Invoice.ID)
	s.Equal(1, result.CandidateCount)
}

func (s *InvoiceMatcherSuite) TestMatchIgnoresDraftAndPaid() {
	s.createInvoice("inv_m3", 25000, types.InvoiceStatusDraft, time.Hour)
	s.createInvoice("inv_m4", 25000, types.InvoiceStatusPaid, time.Hour)

	result, err := s.service.Match(s.GetContext(), s.event(25000))
	s.NoError(err)
	s.True(result.NoMatch())
	s.Zero(result.CandidateCount)
}

func (s *InvoiceMatcherSuite) TestMatchIncludesOverdue() {
	want := s.createInvoice("inv_m5", 25000, types.InvoiceStatusOverdue, time.Hour)

	result, err := s.service.Match(s.GetContext(), s.event(25000))
	s.NoError(err)
	s.Equal(want.ID, result.Invoice.ID)
}

func (s *InvoiceMatcherSuite) TestMatchPrefersMostRecent() {
	s.createInvoice("inv_m6", 5000, types.InvoiceStatusSent, 72*time.Hour)
	newest := s.createInvoice("inv_m7", 5000, types.InvoiceStatusSent, time.Hour)

	result, err := s.service.Match(s.GetContext(), s.event(5000))
	s.NoError(err)
	s.Equal(newest.ID, result.Invoice.ID)
	s.Equal(2, result.CandidateCount)
}

func (s *InvoiceMatcherSuite) TestStrictMatchingRejectsTies() {
	s.GetConfig().Reconciliation.StrictMatching = true
	defer func() { s.GetConfig().Reconciliation.StrictMatching = false }()

	s.createInvoice("inv_m8", 5000, types.InvoiceStatusSent, 72*time.Hour)
	s.createInvoice("inv_m9", 5000, types.InvoiceStatusSent, time.Hour)

	_, err := s.service.Match(s.GetContext(), s.event(5000))
	s.Error(err)
	s.True(ierr.IsAmbiguousMatch(err))
}

func (s *InvoiceMatcherSuite) TestMatchRequiresExactAmount() {
	s.createInvoice("inv_m10", 25000, types.InvoiceStatusSent, time.Hour)

	// A partial payment matches nothing
	result, err := s.service.Match(s.GetContext(), s.event(24999))
	s.NoError(err)
	s.True(result.NoMatch())
}
