package ent

import (
	"context"

	"github.com/rentdesk/rentdesk/ent"
	"github.com/rentdesk/rentdesk/ent/smsnotification"
	domainNotification "github.com/rentdesk/rentdesk/internal/domain/notification"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/postgres"
	"github.com/rentdesk/rentdesk/internal/types"
)

type notificationRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewNotificationRepository(client postgres.IClient, log *logger.Logger) domainNotification.Repository {
	return &notificationRepository{
		client: client,
		log:    log,
	}
}

func (r *notificationRepository) Create(ctx context.Context, n *domainNotification.SmsNotification) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("recording sms notification",
		"notification_id", n.ID,
		"account_id", n.AccountID,
		"sms_type", n.SmsType,
		"delivery_status", n.DeliveryStatus,
	)

	created, err := client.SmsNotification.Create().
		SetID(n.ID).
		SetTenantID(n.TenantID).
		SetSmsType(string(n.SmsType)).
		SetPhoneNumber(n.PhoneNumber).
		SetMessage(n.Message).
		SetDeliveryStatus(string(n.DeliveryStatus)).
		SetFailureReason(n.FailureReason).
		SetAccountID(n.AccountID).
		SetStatus(string(n.Status)).
		SetCreatedAt(n.CreatedAt).
		SetUpdatedAt(n.UpdatedAt).
		SetCreatedBy(n.CreatedBy).
		SetUpdatedBy(n.UpdatedBy).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to record sms notification").
			WithReportableDetails(map[string]interface{}{
				"notification_id": n.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*n = *domainNotification.FromEnt(created)
	return nil
}

func (r *notificationRepository) Get(ctx context.Context, id string) (*domainNotification.SmsNotification, error) {
	client := r.client.Querier(ctx)

	n, err := client.SmsNotification.Query().
		Where(
			smsnotification.ID(id),
			smsnotification.AccountID(types.GetAccountID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Notification not found").
				WithReportableDetails(map[string]interface{}{
					"notification_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve notification").
			Mark(ierr.ErrDatabase)
	}

	return domainNotification.FromEnt(n), nil
}

func (r *notificationRepository) List(ctx context.Context, filter *types.NotificationFilter) ([]*domainNotification.SmsNotification, error) {
	if filter == nil {
		filter = &types.NotificationFilter{
			QueryFilter: types.NewDefaultQueryFilter(),
		}
	}

	client := r.client.Querier(ctx)

	query := r.applyFilter(ctx, client.SmsNotification.Query(), filter).
		Order(ent.Desc(smsnotification.FieldCreatedAt))

	if !filter.IsUnlimited() {
		query = query.
			Limit(filter.GetLimit()).
			Offset(filter.GetOffset())
	}

	notifications, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list notifications").
			Mark(ierr.ErrDatabase)
	}

	return domainNotification.FromEntList(notifications), nil
}

func (r *notificationRepository) Count(ctx context.Context, filter *types.NotificationFilter) (int, error) {
	client := r.client.Querier(ctx)

	count, err := r.applyFilter(ctx, client.SmsNotification.Query(), filter).Count(ctx)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count notifications").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}

func (r *notificationRepository) applyFilter(ctx context.Context, query *ent.SmsNotificationQuery, filter *types.NotificationFilter) *ent.SmsNotificationQuery {
	query = query.Where(smsnotification.AccountID(types.GetAccountID(ctx)))

	if filter == nil {
		return query
	}

	if filter.TenantID != nil {
		query = query.Where(smsnotification.TenantID(*filter.TenantID))
	}
	if filter.SmsType != nil {
		query = query.Where(smsnotification.SmsType(string(*filter.SmsType)))
	}
	if filter.DeliveryStatus != nil {
		query = query.Where(smsnotification.DeliveryStatus(string(*filter.DeliveryStatus)))
	}

	return query
}
