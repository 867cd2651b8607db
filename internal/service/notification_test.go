package service

import (
	"testing"
	"time"

	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	"github.com/rentdesk/rentdesk/internal/domain/tenant"
	"github.com/rentdesk/rentdesk/internal/testutil"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service NotificationService
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceSuite))
}

func (s *NotificationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewNotificationService(ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		DB:               s.GetDB(),
		SmsClient:        s.GetSmsClient(),
		TenantRepo:       s.GetStores().TenantRepo,
		InvoiceRepo:      s.GetStores().InvoiceRepo,
		NotificationRepo: s.GetStores().NotificationRepo,
	})
}

func (s *NotificationServiceSuite) createTenant(id, phone string) *tenant.Tenant {
	t := &tenant.Tenant{
		ID:          id,
		Name:        "Mary Akinyi",
		PhoneNumber: phone,
		BaseModel:   types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().TenantRepo.Create(s.GetContext(), t))
	return t
}

func (s *NotificationServiceSuite) invoiceFor(t *tenant.Tenant) *invoice.Invoice {
	due := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	return &invoice.Invoice{
		ID:            "inv_" + t.ID,
		TenantID:      t.ID,
		InvoiceNumber: "INV-42",
		InvoiceStatus: types.InvoiceStatusSent,
		Amount:        decimal.NewFromInt(20000),
		Currency:      "KES",
		DueDate:       &due,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
}

func (s *NotificationServiceSuite) TestSendRentReminderDueSoon() {
	t := s.createTenant("tnt_n1", "254711000001")
	s.service.SendRentReminder(s.GetContext(), s.invoiceFor(t), types.SmsTypeReminderDueSoon)

	sent := s.GetSmsClient().Sent()
	s.Len(sent, 1)
	s.Contains(sent[0].Message, "Mary Akinyi")
	s.Contains(sent[0].Message, "due on 5 Sep 2026")

	logs, err := s.GetStores().NotificationRepo.List(s.GetContext(), &types.NotificationFilter{})
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal(types.SmsTypeReminderDueSoon, logs[0].SmsType)
	s.Equal(types.SmsDeliveryStatusSent, logs[0].DeliveryStatus)
}

func (s *NotificationServiceSuite) TestSendRentReminderOverdue() {
	t := s.createTenant("tnt_n2", "254711000002")
	s.service.SendRentReminder(s.GetContext(), s.invoiceFor(t), types.SmsTypeReminderOverdue)

	sent := s.GetSmsClient().Sent()
	s.Len(sent, 1)
	s.Contains(sent[0].Message, "overdue")
}

func (s *NotificationServiceSuite) TestMissingPhoneNumberIsSkipped() {
	t := s.createTenant("tnt_n3", "")
	s.service.SendRentReminder(s.GetContext(), s.invoiceFor(t), types.SmsTypeReminderDueSoon)

	// Nothing handed to the gateway, but the attempt is on record
	s.Empty(s.GetSmsClient().Sent())

	logs, err := s.GetStores().NotificationRepo.List(s.GetContext(), &types.NotificationFilter{
		DeliveryStatus: lo.ToPtr(types.SmsDeliveryStatusSkipped),
	})
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal("tenant has no phone number", logs[0].FailureReason)
}

func (s *NotificationServiceSuite) TestDeliveryFailureIsRecorded() {
	t := s.createTenant("tnt_n4", "254711000004")
	s.GetSmsClient().FailWith("provider unreachable")

	s.service.SendRentReminder(s.GetContext(), s.invoiceFor(t), types.SmsTypeReminderOverdue)

	logs, err := s.GetStores().NotificationRepo.List(s.GetContext(), &types.NotificationFilter{})
	s.NoError(err)
	s.Len(logs, 1)
	s.Equal(types.SmsDeliveryStatusFailed, logs[0].DeliveryStatus)
	s.Equal("provider unreachable", logs[0].FailureReason)
}

func (s *NotificationServiceSuite) TestListFiltersByType() {
	t := s.createTenant("tnt_n5", "254711000005")
	s.service.SendRentReminder(s.GetContext(), s.invoiceFor(t), types.SmsTypeReminderDueSoon)
	s.service.SendRentReminder(s.GetContext(), s.invoiceFor(t), types.SmsTypeReminderOverdue)

	resp, err := s.service.List(s.GetContext(), &types.NotificationFilter{
		SmsType: lo.ToPtr(types.SmsTypeReminderOverdue),
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(types.SmsTypeReminderOverdue, resp.Items[0].SmsType)
}
