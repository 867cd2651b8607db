package ent

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/ent"
	"github.com/rentdesk/rentdesk/ent/property"
	domainProperty "github.com/rentdesk/rentdesk/internal/domain/property"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/postgres"
	"github.com/rentdesk/rentdesk/internal/types"
)

type propertyRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewPropertyRepository(client postgres.IClient, log *logger.Logger) domainProperty.Repository {
	return &propertyRepository{
		client: client,
		log:    log,
	}
}

func (r *propertyRepository) Create(ctx context.Context, p *domainProperty.Property) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating property",
		"property_id", p.ID,
		"account_id", p.AccountID,
	)

	created, err := client.Property.Create().
		SetID(p.ID).
		SetName(p.Name).
		SetAddress(p.Address).
		SetAccountID(p.AccountID).
		SetStatus(string(p.Status)).
		SetCreatedAt(p.CreatedAt).
		SetUpdatedAt(p.UpdatedAt).
		SetCreatedBy(p.CreatedBy).
		SetUpdatedBy(p.UpdatedBy).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create property").
			WithReportableDetails(map[string]interface{}{
				"property_id": p.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*p = *domainProperty.FromEnt(created)
	return nil
}

func (r *propertyRepository) Get(ctx context.Context, id string) (*domainProperty.Property, error) {
	client := r.client.Querier(ctx)

	p, err := client.Property.Query().
		Where(
			property.ID(id),
			property.AccountID(types.GetAccountID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Property not found").
				WithReportableDetails(map[string]interface{}{
					"property_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve property").
			Mark(ierr.ErrDatabase)
	}

	return domainProperty.FromEnt(p), nil
}

func (r *propertyRepository) Update(ctx context.Context, p *domainProperty.Property) error {
	client := r.client.Querier(ctx)

	n, err := client.Property.Update().
		Where(
			property.ID(p.ID),
			property.AccountID(types.GetAccountID(ctx)),
		).
		SetName(p.Name).
		SetAddress(p.Address).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update property").
			Mark(ierr.ErrDatabase)
	}
	if n == 0 {
		return ierr.NewError("property not found").
			WithHint("Property not found").
			WithReportableDetails(map[string]interface{}{
				"property_id": p.ID,
			}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	n, err := client.Property.Update().
		Where(
			property.ID(id),
			property.AccountID(types.GetAccountID(ctx)),
		).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete property").
			Mark(ierr.ErrDatabase)
	}
	if n == 0 {
		return ierr.NewError("property not found").
			WithHint("Property not found").
			WithReportableDetails(map[string]interface{}{
				"property_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *propertyRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainProperty.Property, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	client := r.client.Querier(ctx)

	query := client.Property.Query().
		Where(
			property.AccountID(types.GetAccountID(ctx)),
			property.StatusNEQ(string(types.StatusDeleted)),
		).
		Order(ent.Desc(property.FieldCreatedAt))

	if !filter.IsUnlimited() {
		query = query.
			Limit(filter.GetLimit()).
			Offset(filter.GetOffset())
	}

	properties, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list properties").
			Mark(ierr.ErrDatabase)
	}

	return domainProperty.FromEntList(properties), nil
}

func (r *propertyRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	client := r.client.Querier(ctx)

	count, err := client.Property.Query().
		Where(
			property.AccountID(types.GetAccountID(ctx)),
			property.StatusNEQ(string(types.StatusDeleted)),
		).
		Count(ctx)

	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count properties").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}
