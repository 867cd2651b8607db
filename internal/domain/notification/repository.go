package notification

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/types"
)

// Repository defines the interface for sms notification persistence
type Repository interface {
	Create(ctx context.Context, notification *SmsNotification) error
	Get(ctx context.Context, id string) (*SmsNotification, error)
	List(ctx context.Context, filter *types.NotificationFilter) ([]*SmsNotification, error)
	Count(ctx context.Context, filter *types.NotificationFilter) (int, error)
}
