package service

import (
	"context"
	"fmt"

	"github.com/rentdesk/rentdesk/internal/api/dto"
	"github.com/rentdesk/rentdesk/internal/domain/invoice"
	"github.com/rentdesk/rentdesk/internal/domain/notification"
	"github.com/rentdesk/rentdesk/internal/domain/payment"
	"github.com/rentdesk/rentdesk/internal/domain/tenant"
	"github.com/rentdesk/rentdesk/internal/types"
)

// NotificationService formats and dispatches tenant SMS messages, recording
// every attempt. Dispatch never returns delivery failures to callers; a
// failed send becomes a log row with status failed, a missing phone number a
// row with status skipped.
type NotificationService interface {
	SendPaymentConfirmation(ctx context.Context, inv *invoice.Invoice, txn *payment.Transaction)
	SendRentReminder(ctx context.Context, inv *invoice.Invoice, smsType types.SmsType)
	List(ctx context.Context, filter *types.NotificationFilter) (*dto.ListNotificationsResponse, error)
}

type notificationService struct {
	ServiceParams
}

// NewNotificationService creates a new notification service
func NewNotificationService(params ServiceParams) NotificationService {
	return &notificationService{
		ServiceParams: params,
	}
}

func (s *notificationService) SendPaymentConfirmation(ctx context.Context, inv *invoice.Invoice, txn *payment.Transaction) {
	t, err := s.TenantRepo.Get(ctx, inv.TenantID)
	if err != nil {
		s.Logger.Errorw("failed to load tenant for payment confirmation",
			"tenant_id", inv.TenantID,
			"invoice_id", inv.ID,
			"error", err,
		)
		return
	}

	message := fmt.Sprintf(
		"Dear %s, we have received your payment of %s %s for invoice %s. Thank you.",
		t.Name, inv.Currency, txn.Amount.StringFixed(2), inv.InvoiceNumber,
	)

	s.dispatch(ctx, t, types.SmsTypePaymentConfirmation, message)
}

func (s *notificationService) SendRentReminder(ctx context.Context, inv *invoice.Invoice, smsType types.SmsType) {
	t, err := s.TenantRepo.Get(ctx, inv.TenantID)
	if err != nil {
		s.Logger.Errorw("failed to load tenant for rent reminder",
			"tenant_id", inv.TenantID,
			"invoice_id", inv.ID,
			"error", err,
		)
		return
	}

	var message string
	switch smsType {
	case types.SmsTypeReminderOverdue:
		message = fmt.Sprintf(
			"Dear %s, your rent of %s %s is overdue. Please make payment as soon as possible.",
			t.Name, inv.Currency, inv.Amount.StringFixed(2),
		)
	default:
		smsType = types.SmsTypeReminderDueSoon
		due := "soon"
		if inv.DueDate != nil {
			due = "on " + inv.DueDate.Format("2 Jan 2006")
		}
		message = fmt.Sprintf(
			"Dear %s, your rent of %s %s is due %s. Please pay promptly.",
			t.Name, inv.Currency, inv.Amount.StringFixed(2), due,
		)
	}

	s.dispatch(ctx, t, smsType, message)
}

// dispatch attempts delivery and always records the outcome. Errors are
// logged, never propagated.
func (s *notificationService) dispatch(ctx context.Context, t *tenant.Tenant, smsType types.SmsType, message string) {
	row := &notification.SmsNotification{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SMS_NOTIFICATION),
		TenantID:    t.ID,
		SmsType:     smsType,
		PhoneNumber: t.PhoneNumber,
		Message:     message,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}

	switch {
	case t.PhoneNumber == "":
		row.DeliveryStatus = types.SmsDeliveryStatusSkipped
		row.FailureReason = "tenant has no phone number"
		s.Logger.Infow("skipping sms, tenant has no phone number",
			"tenant_id", t.ID,
			"sms_type", smsType,
		)
	default:
		if err := s.SmsClient.Send(ctx, t.PhoneNumber, message); err != nil {
			row.DeliveryStatus = types.SmsDeliveryStatusFailed
			row.FailureReason = err.Error()
			s.Logger.Errorw("sms delivery failed",
				"tenant_id", t.ID,
				"sms_type", smsType,
				"error", err,
			)
		} else {
			row.DeliveryStatus = types.SmsDeliveryStatusSent
		}
	}

	if err := s.NotificationRepo.Create(ctx, row); err != nil {
		s.Logger.Errorw("failed to record sms notification",
			"tenant_id", t.ID,
			"sms_type", smsType,
			"error", err,
		)
	}
}

func (s *notificationService) List(ctx context.Context, filter *types.NotificationFilter) (*dto.ListNotificationsResponse, error) {
	if filter == nil {
		filter = &types.NotificationFilter{
			QueryFilter: types.NewDefaultQueryFilter(),
		}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	notifications, err := s.NotificationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.NotificationRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.ListNotificationsResponse{
		Items: make([]*dto.NotificationResponse, len(notifications)),
	}
	for i, n := range notifications {
		resp.Items[i] = &dto.NotificationResponse{SmsNotification: n}
	}
	resp.Pagination = types.NewPaginationResponse(count, filter.GetLimit(), filter.GetOffset())
	return resp, nil
}
