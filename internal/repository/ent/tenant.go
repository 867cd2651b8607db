package ent

import (
	"context"
	"time"

	"github.com/rentdesk/rentdesk/ent"
	"github.com/rentdesk/rentdesk/ent/tenant"
	domainTenant "github.com/rentdesk/rentdesk/internal/domain/tenant"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/postgres"
	"github.com/rentdesk/rentdesk/internal/types"
)

type tenantRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewTenantRepository(client postgres.IClient, log *logger.Logger) domainTenant.Repository {
	return &tenantRepository{
		client: client,
		log:    log,
	}
}

func (r *tenantRepository) Create(ctx context.Context, t *domainTenant.Tenant) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating tenant",
		"tenant_id", t.ID,
		"account_id", t.AccountID,
	)

	created, err := client.Tenant.Create().
		SetID(t.ID).
		SetUnitID(t.UnitID).
		SetName(t.Name).
		SetPhoneNumber(t.PhoneNumber).
		SetEmail(t.Email).
		SetAccountID(t.AccountID).
		SetStatus(string(t.Status)).
		SetCreatedAt(t.CreatedAt).
		SetUpdatedAt(t.UpdatedAt).
		SetCreatedBy(t.CreatedBy).
		SetUpdatedBy(t.UpdatedBy).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create tenant").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": t.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*t = *domainTenant.FromEnt(created)
	return nil
}

func (r *tenantRepository) Get(ctx context.Context, id string) (*domainTenant.Tenant, error) {
	client := r.client.Querier(ctx)

	t, err := client.Tenant.Query().
		Where(
			tenant.ID(id),
			tenant.AccountID(types.GetAccountID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Tenant not found").
				WithReportableDetails(map[string]interface{}{
					"tenant_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve tenant").
			Mark(ierr.ErrDatabase)
	}

	return domainTenant.FromEnt(t), nil
}

func (r *tenantRepository) Update(ctx context.Context, t *domainTenant.Tenant) error {
	client := r.client.Querier(ctx)

	n, err := client.Tenant.Update().
		Where(
			tenant.ID(t.ID),
			tenant.AccountID(types.GetAccountID(ctx)),
		).
		SetUnitID(t.UnitID).
		SetName(t.Name).
		SetPhoneNumber(t.PhoneNumber).
		SetEmail(t.Email).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update tenant").
			Mark(ierr.ErrDatabase)
	}
	if n == 0 {
		return ierr.NewError("tenant not found").
			WithHint("Tenant not found").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": t.ID,
			}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *tenantRepository) Delete(ctx context.Context, id string) error {
	client := r.client.Querier(ctx)

	n, err := client.Tenant.Update().
		Where(
			tenant.ID(id),
			tenant.AccountID(types.GetAccountID(ctx)),
		).
		SetStatus(string(types.StatusDeleted)).
		SetUpdatedAt(time.Now().UTC()).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to delete tenant").
			Mark(ierr.ErrDatabase)
	}
	if n == 0 {
		return ierr.NewError("tenant not found").
			WithHint("Tenant not found").
			WithReportableDetails(map[string]interface{}{
				"tenant_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}

	return nil
}

func (r *tenantRepository) List(ctx context.Context, filter *types.QueryFilter) ([]*domainTenant.Tenant, error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}

	client := r.client.Querier(ctx)

	query := client.Tenant.Query().
		Where(
			tenant.AccountID(types.GetAccountID(ctx)),
			tenant.StatusNEQ(string(types.StatusDeleted)),
		).
		Order(ent.Desc(tenant.FieldCreatedAt))

	if !filter.IsUnlimited() {
		query = query.
			Limit(filter.GetLimit()).
			Offset(filter.GetOffset())
	}

	tenants, err := query.All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list tenants").
			Mark(ierr.ErrDatabase)
	}

	return domainTenant.FromEntList(tenants), nil
}

func (r *tenantRepository) Count(ctx context.Context, filter *types.QueryFilter) (int, error) {
	client := r.client.Querier(ctx)

	count, err := client.Tenant.Query().
		Where(
			tenant.AccountID(types.GetAccountID(ctx)),
			tenant.StatusNEQ(string(types.StatusDeleted)),
		).
		Count(ctx)

	if err != nil {
		return 0, ierr.WithError(err).
			WithHint("Failed to count tenants").
			Mark(ierr.ErrDatabase)
	}

	return count, nil
}
