package service

import (
	"testing"
	"time"

	"github.com/rentdesk/rentdesk/internal/api/dto"
	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	"github.com/rentdesk/rentdesk/internal/domain/tenant"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/testutil"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ReconciliationService
	testData struct {
		tenant  *tenant.Tenant
		invoice *invoice.Invoice
	}
}

func TestReconciliationService(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceSuite))
}

func (s *ReconciliationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *ReconciliationServiceSuite) serviceParams() ServiceParams {
	return ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		DB:               s.GetDB(),
		SmsClient:        s.GetSmsClient(),
		IdempotencyGn:    s.GetIdempotencyGenerator(),
		AccountRepo:      s.GetStores().AccountRepo,
		PropertyRepo:     s.GetStores().PropertyRepo,
		UnitRepo:         s.GetStores().UnitRepo,
		TenantRepo:       s.GetStores().TenantRepo,
		InvoiceRepo:      s.GetStores().InvoiceRepo,
		PaymentRepo:      s.GetStores().PaymentRepo,
		NotificationRepo: s.GetStores().NotificationRepo,
		UserRepo:         s.GetStores().UserRepo,
	}
}

func (s *ReconciliationServiceSuite) setupService() {
	params := s.serviceParams()
	matcher := NewInvoiceMatcherService(params)
	notifier := NewNotificationService(params)
	s.service = NewReconciliationService(params, matcher, notifier)
}

func (s *ReconciliationServiceSuite) setupTestData() {
	s.testData.tenant = &tenant.Tenant{
		ID:          "tnt_test_recon",
		Name:        "Jane Wanjiku",
		PhoneNumber: "254700000001",
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().TenantRepo.Create(s.GetContext(), s.testData.tenant))

	s.testData.invoice = s.createInvoice("inv_test_recon", "INV-001", decimal.NewFromInt(25000), types.InvoiceStatusSent, s.GetNow())
}

func (s *ReconciliationServiceSuite) createInvoice(id, number string, amount decimal.Decimal, status types.InvoiceStatus, createdAt time.Time) *invoice.Invoice {
	due := s.GetNow().AddDate(0, 0, 5)
	inv := &invoice.Invoice{
		ID:            id,
		TenantID:      s.testData.tenant.ID,
		InvoiceNumber: number,
		InvoiceStatus: status,
		Amount:        amount,
		AmountPaid:    decimal.Zero,
		Currency:      "KES",
		DueDate:       &due,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	inv.CreatedAt = createdAt
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), inv))
	return inv
}

func (s *ReconciliationServiceSuite) paymentEvent(externalID string, amount decimal.Decimal) *dto.PaymentEvent {
	return &dto.PaymentEvent{
		Amount:     amount,
		Method:     types.PaymentMethodMpesa,
		ExternalID: externalID,
		PayerPhone: "254700000001",
		PayerName:  "Jane Wanjiku",
	}
}

func (s *ReconciliationServiceSuite) TestProcessPaymentMatchesSingleInvoice() {
	resp, err := s.service.ProcessPayment(s.GetContext(), s.paymentEvent("QR1", decimal.NewFromInt(25000)))
	s.NoError(err)
	s.True(resp.Success)
	s.False(resp.Replayed)
	s.NotNil(resp.MatchedInvoice)
	s.Equal(s.testData.invoice.ID, resp.MatchedInvoice.ID)

	// Invoice settled with the payment details
	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)
	s.True(inv.AmountPaid.Equal(decimal.NewFromInt(25000)))
	s.Equal("mpesa", inv.PaymentMethod)
	s.Equal("QR1", inv.PaymentRef)
	s.NotNil(inv.PaidAt)

	// Transaction linked to the invoice
	txn, err := s.GetStores().PaymentRepo.Get(s.GetContext(), resp.Transaction.ID)
	s.NoError(err)
	s.True(txn.IsLinked())
	s.Equal(s.testData.invoice.ID, *txn.InvoiceID)
	s.Equal(types.TransactionStatusCompleted, txn.TransactionStatus)

	// Confirmation sms recorded and delivered
	sent := s.GetSmsClient().Sent()
	s.Len(sent, 1)
	s.Equal("254700000001", sent[0].PhoneNumber)
	s.Contains(sent[0].Message, "INV-001")

	logs, err := s.GetStores().NotificationRepo.List(s.GetContext(), &types.NotificationFilter{})
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal(types.SmsDeliveryStatusSent, logs[0].DeliveryStatus)
	s.Equal(types.SmsTypePaymentConfirmation, logs[0].SmsType)
}

func (s *ReconciliationServiceSuite) TestProcessPaymentNoMatch() {
	resp, err := s.service.ProcessPayment(s.GetContext(), s.paymentEvent("NM1", decimal.NewFromInt(17500)))
	s.NoError(err)
	s.True(resp.Success)
	s.Nil(resp.MatchedInvoice)

	// The transaction is persisted unlinked for manual review
	txn, err := s.GetStores().PaymentRepo.Get(s.GetContext(), resp.Transaction.ID)
	s.NoError(err)
	s.False(txn.IsLinked())

	// The open invoice is untouched
	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusSent, inv.InvoiceStatus)

	// No confirmation goes out
	s.Empty(s.GetSmsClient().Sent())
	count, err := s.GetStores().NotificationRepo.Count(s.GetContext(), &types.NotificationFilter{})
	s.NoError(err)
	s.Zero(count)
}

func (s *ReconciliationServiceSuite) TestProcessPaymentIsIdempotent() {
	first, err := s.service.ProcessPayment(s.GetContext(), s.paymentEvent("QR1", decimal.NewFromInt(25000)))
	s.NoError(err)
	s.False(first.Replayed)

	// Redelivery of the same event returns the stored outcome
	second, err := s.service.ProcessPayment(s.GetContext(), s.paymentEvent("QR1", decimal.NewFromInt(25000)))
	s.NoError(err)
	s.True(second.Replayed)
	s.Equal(first.Transaction.ID, second.Transaction.ID)
	s.NotNil(second.MatchedInvoice)
	s.Equal(s.testData.invoice.ID, second.MatchedInvoice.ID)

	// Exactly one transaction row exists
	count, err := s.GetStores().PaymentRepo.Count(s.GetContext(), &types.TransactionFilter{})
	s.NoError(err)
	s.Equal(1, count)

	// The invoice was paid exactly once
	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)
	s.True(inv.AmountPaid.Equal(decimal.NewFromInt(25000)))
}

func (s *ReconciliationServiceSuite) TestProcessPaymentPrefersMostRecentInvoice() {
	older := s.createInvoice("inv_older", "INV-OLD", decimal.NewFromInt(5000), types.InvoiceStatusOverdue, s.GetNow().Add(-48*time.Hour))
	newer := s.createInvoice("inv_newer", "INV-NEW", decimal.NewFromInt(5000), types.InvoiceStatusOverdue, s.GetNow().Add(-2*time.Hour))

	resp, err := s.service.ProcessPayment(s.GetContext(), s.paymentEvent("RC1", decimal.NewFromInt(5000)))
	s.NoError(err)
	s.NotNil(resp.MatchedInvoice)
	s.Equal(newer.ID, resp.MatchedInvoice.ID)
	s.Equal(2, resp.CandidateCount)

	// The older invoice stays open
	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), older.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusOverdue, inv.InvoiceStatus)
}

func (s *ReconciliationServiceSuite) TestProcessPaymentStrictModeRejectsAmbiguous() {
	s.GetConfig().Reconciliation.StrictMatching = true
	defer func() { s.GetConfig().Reconciliation.StrictMatching = false }()

	s.createInvoice("inv_amb_1", "INV-A1", decimal.NewFromInt(9000), types.InvoiceStatusSent, s.GetNow().Add(-24*time.Hour))
	s.createInvoice("inv_amb_2", "INV-A2", decimal.NewFromInt(9000), types.InvoiceStatusSent, s.GetNow().Add(-1*time.Hour))

	_, err := s.service.ProcessPayment(s.GetContext(), s.paymentEvent("AM1", decimal.NewFromInt(9000)))
	s.Error(err)
	s.True(ierr.IsAmbiguousMatch(err))

	// The transaction is still recorded, unlinked, so the money is not lost
	unlinked, err := s.service.ListUnlinked(s.GetContext())
	s.NoError(err)
	s.Len(unlinked, 1)
	s.Equal("AM1", unlinked[0].ExternalID)

	// Neither invoice was touched
	for _, id := range []string{"inv_amb_1", "inv_amb_2"} {
		inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), id)
		s.NoError(err)
		s.Equal(types.InvoiceStatusSent, inv.InvoiceStatus)
	}
}

func (s *ReconciliationServiceSuite) TestProcessPaymentSmsFailureDoesNotUnwind() {
	s.GetSmsClient().FailWith("gateway timeout")

	resp, err := s.service.ProcessPayment(s.GetContext(), s.paymentEvent("SF1", decimal.NewFromInt(25000)))
	s.NoError(err)
	s.NotNil(resp.MatchedInvoice)

	// The invoice is paid despite the delivery failure
	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)

	// The failed attempt is on record
	logs, err := s.GetStores().NotificationRepo.List(s.GetContext(), &types.NotificationFilter{
		DeliveryStatus: lo.ToPtr(types.SmsDeliveryStatusFailed),
	})
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal("gateway timeout", logs[0].FailureReason)
}

func (s *ReconciliationServiceSuite) TestProcessPaymentSkipsPaidInvoices() {
	// Settle the invoice first
	_, err := s.service.ProcessPayment(s.GetContext(), s.paymentEvent("PD1", decimal.NewFromInt(25000)))
	s.NoError(err)

	// A second event with the same amount but a new reference finds nothing
	resp, err := s.service.ProcessPayment(s.GetContext(), s.paymentEvent("PD2", decimal.NewFromInt(25000)))
	s.NoError(err)
	s.Nil(resp.MatchedInvoice)

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), s.testData.invoice.ID)
	s.NoError(err)
	s.True(inv.AmountPaid.Equal(decimal.NewFromInt(25000)))
	s.Equal("PD1", inv.PaymentRef)
}

func (s *ReconciliationServiceSuite) TestProcessPaymentRejectsInvalidEvent() {
	_, err := s.service.ProcessPayment(s.GetContext(), &dto.PaymentEvent{
		Amount: decimal.NewFromInt(100),
		Method: types.PaymentMethodMpesa,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.ProcessPayment(s.GetContext(), &dto.PaymentEvent{
		ExternalID: "ZL1",
		Amount:     decimal.Zero,
		Method:     types.PaymentMethodMpesa,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ReconciliationServiceSuite) TestListUnlinked() {
	_, err := s.service.ProcessPayment(s.GetContext(), s.paymentEvent("UL1", decimal.NewFromInt(300)))
	s.NoError(err)
	_, err = s.service.ProcessPayment(s.GetContext(), s.paymentEvent("UL2", decimal.NewFromInt(25000)))
	s.NoError(err)

	unlinked, err := s.service.ListUnlinked(s.GetContext())
	s.NoError(err)
	s.Len(unlinked, 1)
	s.Equal("UL1", unlinked[0].ExternalID)
}
