package service

import (
	"testing"
	"time"

	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	"github.com/rentdesk/rentdesk/internal/domain/tenant"
	"github.com/rentdesk/rentdesk/internal/testutil"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReminderServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  ReminderService
	testData struct {
		tenant *tenant.Tenant
	}
}

func TestReminderService(t *testing.T) {
	suite.Run(t, new(ReminderServiceSuite))
}

func (s *ReminderServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	params := ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		DB:               s.GetDB(),
		SmsClient:        s.GetSmsClient(),
		TenantRepo:       s.GetStores().TenantRepo,
		InvoiceRepo:      s.GetStores().InvoiceRepo,
		NotificationRepo: s.GetStores().NotificationRepo,
	}
	s.service = NewReminderService(params, NewNotificationService(params))

	s.testData.tenant = &tenant.Tenant{
		ID:          "tnt_test_reminder",
		Name:        "John Mwangi",
		PhoneNumber: "254722000001",
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().TenantRepo.Create(s.GetContext(), s.testData.tenant))
}

func (s *ReminderServiceSuite) createInvoice(id string, status types.InvoiceStatus, due time.Time) *invoice.Invoice {
	inv := &invoice.Invoice{
		ID:            id,
		TenantID:      s.testData.tenant.ID,
		InvoiceNumber: "INV-" + id,
		InvoiceStatus: status,
		Amount:        decimal.NewFromInt(20000),
		Currency:      "KES",
		DueDate:       &due,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().InvoiceRepo.Create(s.GetContext(), inv))
	return inv
}

func (s *ReminderServiceSuite) TestSendRentRemindersCoversDueSoonAndOverdue() {
	now := time.Now().UTC()
	// Due inside the 3 day horizon
	s.createInvoice("inv_due_soon", types.InvoiceStatusSent, now.AddDate(0, 0, 2))
	// Due well outside the horizon
	s.createInvoice("inv_far_out", types.InvoiceStatusSent, now.AddDate(0, 0, 20))
	// Already overdue
	s.createInvoice("inv_overdue", types.InvoiceStatusOverdue, now.AddDate(0, 0, -4))
	// Paid invoices are never nudged
	s.createInvoice("inv_paid", types.InvoiceStatusPaid, now.AddDate(0, 0, 1))

	resp, err := s.service.SendRentReminders(s.GetContext())
	s.NoError(err)
	s.True(resp.Success)
	s.Equal(2, resp.Count)

	sent := s.GetSmsClient().Sent()
	s.Len(sent, 2)
}

func (s *ReminderServiceSuite) TestMarkOverdueInvoices() {
	now := time.Now().UTC()
	s.createInvoice("inv_past_due", types.InvoiceStatusSent, now.AddDate(0, 0, -1))
	s.createInvoice("inv_not_due", types.InvoiceStatusSent, now.AddDate(0, 0, 3))
	paid := s.createInvoice("inv_settled", types.InvoiceStatusPaid, now.AddDate(0, 0, -10))

	resp, err := s.service.MarkOverdueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Count)

	inv, err := s.GetStores().InvoiceRepo.Get(s.GetContext(), "inv_past_due")
	s.NoError(err)
	s.Equal(types.InvoiceStatusOverdue, inv.InvoiceStatus)

	inv, err = s.GetStores().InvoiceRepo.Get(s.GetContext(), "inv_not_due")
	s.NoError(err)
	s.Equal(types.InvoiceStatusSent, inv.InvoiceStatus)

	// A paid invoice never regresses
	inv, err = s.GetStores().InvoiceRepo.Get(s.GetContext(), paid.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.InvoiceStatus)
}

func (s *ReminderServiceSuite) TestMarkOverdueIsIdempotent() {
	now := time.Now().UTC()
	s.createInvoice("inv_once", types.InvoiceStatusSent, now.AddDate(0, 0, -1))

	resp, err := s.service.MarkOverdueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, resp.Count)

	// Second sweep finds nothing left in sent status
	resp, err = s.service.MarkOverdueInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(0, resp.Count)
}
