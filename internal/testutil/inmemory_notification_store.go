package testutil

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/domain/notification"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// InMemoryNotificationStore implements notification.Repository
type InMemoryNotificationStore struct {
	*InMemoryStore[*notification.SmsNotification]
}

// NewInMemoryNotificationStore creates a new in-memory sms notification repository
func NewInMemoryNotificationStore() *InMemoryNotificationStore {
	return &InMemoryNotificationStore{
		InMemoryStore: NewInMemoryStore[*notification.SmsNotification](),
	}
}

func copyNotification(n *notification.SmsNotification) *notification.SmsNotification {
	if n == nil {
		return nil
	}
	copied := *n
	return &copied
}

// Create stores a new notification record
func (s *InMemoryNotificationStore) Create(ctx context.Context, n *notification.SmsNotification) error {
	if n == nil {
		return ierr.NewError("notification cannot be nil").
			WithHint("Notification cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, n.ID, copyNotification(n))
}

// Get retrieves a notification by ID within the caller's account
func (s *InMemoryNotificationStore) Get(ctx context.Context, id string) (*notification.SmsNotification, error) {
	n, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Notification with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	if !CheckAccountFilter(ctx, n.AccountID) {
		return nil, ierr.NewError("notification not found").
			WithHintf("Notification with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return copyNotification(n), nil
}

func notificationFilterFn(ctx context.Context, n *notification.SmsNotification, f interface{}) bool {
	filter, ok := f.(*types.NotificationFilter)
	if !ok {
		return true
	}
	if n == nil {
		return false
	}

	if !CheckAccountFilter(ctx, n.AccountID) {
		return false
	}

	if filter.TenantID != nil && n.TenantID != *filter.TenantID {
		return false
	}

	if filter.SmsType != nil && n.SmsType != *filter.SmsType {
		return false
	}

	if filter.DeliveryStatus != nil && n.DeliveryStatus != *filter.DeliveryStatus {
		return false
	}

	if filter.TimeRangeFilter != nil {
		if filter.StartTime != nil && n.CreatedAt.Before(*filter.StartTime) {
			return false
		}
		if filter.EndTime != nil && n.CreatedAt.After(*filter.EndTime) {
			return false
		}
	}

	return true
}

func notificationSortFn(i, j *notification.SmsNotification) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

// List retrieves notifications matching the filter
func (s *InMemoryNotificationStore) List(ctx context.Context, filter *types.NotificationFilter) ([]*notification.SmsNotification, error) {
	items, err := s.InMemoryStore.List(ctx, filter, notificationFilterFn, notificationSortFn)
	if err != nil {
		return nil, err
	}
	result := make([]*notification.SmsNotification, len(items))
	for i, n := range items {
		result[i] = copyNotification(n)
	}
	return result, nil
}

// Count returns the number of notifications matching the filter
func (s *InMemoryNotificationStore) Count(ctx context.Context, filter *types.NotificationFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, notificationFilterFn)
}
