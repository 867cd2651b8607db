package ent

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/ent"
	"github.com/rentdesk/rentdesk/ent/unit"
	domainUnit "github.com/rentdesk/rentdesk/internal/domain/unit"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/postgres"
	"github.com/rentdesk/rentdesk/internal/types"
)

type unitRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewUnitRepository(client postgres.IClient, log *logger.Logger) domainUnit.Repository {
	return &unitRepository{
		client: client,
		log:    log,
	}
}

func (r *unitRepository) Create(ctx context.Context, u *domainUnit.Unit) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating unit",
		"unit_id", u.ID,
		"account_id", u.AccountID,
		"property_id", u.PropertyID,
	)

	created, err := client.Unit.Create().
		SetID(u.ID).
		SetPropertyID(u.PropertyID).
		SetUnitNumber(u.UnitNumber).
		SetMonthlyRent(u.MonthlyRent).
		SetAccountID(u.AccountID).
		SetStatus(string(u.Status)).
		SetCreatedAt(u.CreatedAt).
		SetUpdatedAt(u.UpdatedAt).
		SetCreatedBy(u.CreatedBy).
		SetUpdatedBy(u.UpdatedBy).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create unit").
			WithReportableDetails(map[string]interface{}{
				"unit_id":     u.ID,
				"property_id": u.PropertyID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*u = *domainUnit.FromEnt(created)
	return nil
}

func (r *unitRepository) Get(ctx context.Context, id string) (*domainUnit.Unit, error) {
	client := r.client.Querier(ctx)

	u, err := client.Unit.Query().
		Where(
			unit.ID(id),
			unit.AccountID(types.GetAccountID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Unit not found").
				WithReportableDetails(map[string]interface{}{
					"unit_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve unit").
			Mark(ierr.ErrDatabase)
	}

	return domainUnit.FromEnt(u), nil
}

func (r *unitRepository) Update(ctx context.Context, u *domainUnit.Unit) error {
	client := r.client.Querier(ctx)

	n, err := client.Unit.Update().
		Where(
			unit.ID(u.ID),
			unit.AccountID(types.GetAccountID(ctx)),
		).
		SetUnitNumber(u.UnitNumber).
		SetMonthlyRent(u.MonthlyRent).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update unit").
			Mark(ierr.ErrDatabase)
	}
	if n == 0 {
		return ierr.NewError("unit not found").
			WithHint("Unit not found").
			WithReportableDetails(map[string]interface{}{
				"unit_id": u.ID,
			}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *unitRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	n, err := client.Unit.Update().
		Where(
			unit.ID(id),
			unit.AccountID(types.GetAccountID(ctx)),
		).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete unit").
			Mark(ierr.ErrDatabase)
	}
	if n == 0 {
		return ierr.NewError("unit not found").
			WithHint("Unit not found").
			WithReportableDetails(map[string]interface{}{
				"unit_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *unitRepository) ListByProperty(ctx context.Context, propertyID string, filter *types.QueryFilter) ([]*domainUnit.Unit, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	client := r.client.Querier(ctx)

	query := client.Unit.Query().
		Where(
			unit.AccountID(types.GetAccountID(ctx)),
			unit.PropertyID(propertyID),
			unit.StatusNEQ(string(types.StatusDeleted)),
		).
		Order(ent.Asc(unit.FieldUnitNumber))

	if !filter.IsUnlimited() {
		query = query.
			Limit(filter.GetLimit()).
			Offset(filter.GetOffset())
	}

	units, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list units").
			WithReportableDetails(map[string]interface{}{
				"property_id": propertyID,
			}).
			Mark(ierr.ErrDatabase)
	}

	return domainUnit.FromEntList(units), nil
}
