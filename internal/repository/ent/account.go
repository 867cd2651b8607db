package ent

import (
	"context"
	"fmt"

	"github.com/rentdesk/rentdesk/ent"
	"github.com/rentdesk/rentdesk/ent/account"
	"github.com/rentdesk/rentdesk/internal/cache"
	domainAccount "github.com/rentdesk/rentdesk/internal/domain/account"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/postgres"
)

type accountRepository struct {
	client postgres.IClient
	log    *logger.Logger
	cache  cache.Cache
}

func NewAccountRepository(client postgres.IClient, log *logger.Logger, cache cache.Cache) domainAccount.Repository {
	return &accountRepository{
		client: client,
		log:    log,
		cache:  cache,
	}
}

func (r *accountRepository) Create(ctx context.Context, a *domainAccount.Account) error {
	client := r.client.Querier(ctx)

	r.log.Debugw("creating account",
		"account_id", a.ID,
		"name", a.Name,
	)

	created, err := client.Account.Create().
		SetID(a.ID).
		SetName(a.Name).
		SetActive(a.Active).
		SetDemo(a.Demo).
		SetStatus(string(a.Status)).
		SetCreatedAt(a.CreatedAt).
		SetUpdatedAt(a.UpdatedAt).
		Save(ctx)

	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create account").
			WithReportableDetails(map[string]interface{}{
				"account_id": a.ID,
			}).
			Mark(ierr.ErrDatabase)
	}

	*a = *domainAccount.FromEnt(created)
	return nil
}

func (r *accountRepository) Get(ctx context.Context, id string) (*domainAccount.Account, error) {
	if cached := r.getCache(ctx, id); cached != nil {
		return cached, nil
	}

	client := r.client.Querier(ctx)

	a, err := client.Account.Query().
		Where(account.ID(id)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("Account not found").
				WithReportableDetails(map[string]interface{}{
					"account_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve account").
			Mark(ierr.ErrDatabase)
	}

	result := domainAccount.FromEnt(a)
	r.setCache(ctx, result)
	return result, nil
}

func (r *accountRepository) Update(ctx context.Context, a *domainAccount.Account) error {
	client := r.client.Querier(ctx)

	_, err := client.Account.Update().
		Where(account.ID(a.ID)).
		SetName(a.Name).
		SetActive(a.Active).
		SetStatus(string(a.Status)).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHint("Account not found").
				WithReportableDetails(map[string]interface{}{
					"account_id": a.ID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHint("Failed to update account").
			Mark(ierr.ErrDatabase)
	}

	r.deleteCache(ctx, a.ID)
	return nil
}

func (r *accountRepository) List(ctx context.Context) ([]*domainAccount.Account, error) {
	client := r.client.Querier(ctx)

	accounts, err := client.Account.Query().
		Order(ent.Desc(account.FieldCreatedAt)).
		All(ctx)

	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list accounts").
			Mark(ierr.ErrDatabase)
	}

	return domainAccount.FromEntList(accounts), nil
}

func (r *accountRepository) Exists(ctx context.Context, id string) (bool, error) {
	client := r.client.Querier(ctx)

	exists, err := client.Account.Query().
		Where(account.ID(id)).
		Exist(ctx)

	if err != nil {
		return false, ierr.WithError(err).
			WithHint("Failed to check account existence").
			Mark(ierr.ErrDatabase)
	}

	return exists, nil
}

func (r *accountRepository) getCache(ctx context.Context, id string) *domainAccount.Account {
	if value, found := r.cache.Get(ctx, r.cacheKey(id)); found {
		if a, ok := value.(*domainAccount.Account); ok {
			return a
		}
	}
	return nil
}

func (r *accountRepository) setCache(ctx context.Context, a *domainAccount.Account) {
	r.cache.Set(ctx, r.cacheKey(a.ID), a, cache.DefaultExpiration)
}

func (r *accountRepository) deleteCache(ctx context.Context, id string) {
	r.cache.Delete(ctx, r.cacheKey(id))
}

func (r *accountRepository) cacheKey(id string) string {
	return fmt.Sprintf("%s%s", cache.PrefixAccount, id)
}
