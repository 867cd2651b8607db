package dto

import (
	"github.com/rentdesk/rentdesk/internal/domain/notification"
	"github.com/rentdesk/rentdesk/internal/types"
)

// NotificationResponse represents an sms notification log row
type NotificationResponse struct {
	*notification.SmsNotification
}

// ListNotificationsResponse represents a paginated list of notifications
type ListNotificationsResponse = types.ListResponse[*NotificationResponse]

// SweepResponse is returned by the scheduled sweep endpoints
type SweepResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}
