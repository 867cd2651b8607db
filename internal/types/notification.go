package types

import (
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/samber/lo"
)

// SmsType identifies the message template used for a notification
type SmsType string

const (
	SmsTypePaymentConfirmation SmsType = "payment_confirmation"
	SmsTypeReminderDueSoon     SmsType = "rent_reminder_due_soon"
	SmsTypeReminderOverdue     SmsType = "rent_reminder_overdue"
)

func (t SmsType) String() string {
	return string(t)
}

func (t SmsType) Validate() error {
	allowed := []SmsType{
		SmsTypePaymentConfirmation,
		SmsTypeReminderDueSoon,
		SmsTypeReminderOverdue,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid sms type").
			WithHint("Please provide a valid sms type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// SmsDeliveryStatus is the recorded outcome of a delivery attempt
type SmsDeliveryStatus string

const (
	SmsDeliveryStatusSent    SmsDeliveryStatus = "sent"
	SmsDeliveryStatusFailed  SmsDeliveryStatus = "failed"
	SmsDeliveryStatusSkipped SmsDeliveryStatus = "skipped"
)

func (s SmsDeliveryStatus) String() string {
	return string(s)
}

// NotificationFilter represents the filter for listing sms notifications
type NotificationFilter struct {
	*QueryFilter
	*TimeRangeFilter

	TenantID       *string            `form:"tenant_id"`
	SmsType        *SmsType           `form:"sms_type"`
	DeliveryStatus *SmsDeliveryStatus `form:"delivery_status"`
}

func (f *NotificationFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.TimeRangeFilter != nil {
		if err := f.TimeRangeFilter.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GetLimit implements BaseFilter interface
func (f *NotificationFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

// GetOffset implements BaseFilter interface
func (f *NotificationFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

// GetSort implements BaseFilter interface
func (f *NotificationFilter) GetSort() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetSort()
	}
	return f.QueryFilter.GetSort()
}

// GetOrder implements BaseFilter interface
func (f *NotificationFilter) GetOrder() string {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOrder()
	}
	return f.QueryFilter.GetOrder()
}

// GetStatus implements BaseFilter interface
func (f *NotificationFilter) GetStatus() Status {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetStatus()
	}
	return f.QueryFilter.GetStatus()
}

// IsUnlimited returns true if the filter has no limit
func (f *NotificationFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
