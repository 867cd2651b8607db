package notification

import (
	"github.com/rentdesk/rentdesk/ent"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// SmsNotification is an audit record of a single SMS dispatch attempt
type SmsNotification struct {
	ID             string                  `json:"id"`
	TenantID       string                  `json:"tenant_id,omitempty"`
	SmsType        types.SmsType           `json:"sms_type"`
	PhoneNumber    string                  `json:"phone_number,omitempty"`
	Message        string                  `json:"message"`
	DeliveryStatus types.SmsDeliveryStatus `json:"delivery_status"`
	FailureReason  string                  `json:"failure_reason,omitempty"`

	types.BaseModel
}

// Validate validates the notification
func (n *SmsNotification) Validate() error {
	if n.Message == "" {
		return ierr.NewError("invalid message").
			WithHint("Message is required").
			Mark(ierr.ErrValidation)
	}
	if err := n.SmsType.Validate(); err != nil {
		return err
	}
	return nil
}

// FromEnt converts an Ent sms notification to a domain notification
func FromEnt(n *ent.SmsNotification) *SmsNotification {
	if n == nil {
		return nil
	}
	return &SmsNotification{
		ID:             n.ID,
		TenantID:       n.TenantID,
		SmsType:        types.SmsType(n.SmsType),
		PhoneNumber:    n.PhoneNumber,
		Message:        n.Message,
		DeliveryStatus: types.SmsDeliveryStatus(n.DeliveryStatus),
		FailureReason:  n.FailureReason,
		BaseModel: types.BaseModel{
			AccountID: n.AccountID,
			Status:    types.Status(n.Status),
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
			CreatedBy: n.CreatedBy,
			UpdatedBy: n.UpdatedBy,
		},
	}
}

// FromEntList converts a list of Ent sms notifications to domain notifications
func FromEntList(notifications []*ent.SmsNotification) []*SmsNotification {
	result := make([]*SmsNotification, len(notifications))
	for i, n := range notifications {
		result[i] = FromEnt(n)
	}
	return result
}
