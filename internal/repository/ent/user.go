package ent

import (
	"context"

	"github.com/rentdesk/rentdesk/ent"
	"github.com/rentdesk/rentdesk/ent/user"
	domainUser "github.com/rentdesk/rentdesk/internal/domain/user"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/logger"
	"github.com/rentdesk/rentdesk/internal/postgres"
	"github.com/rentdesk/rentdesk/internal/types"
)

type userRepository struct {
	client postgres.IClient
	log    *logger.Logger
}

func NewUserRepository(client postgres.IClient, log *logger.Logger) domainUser.Repository {
	return &userRepository{
		client: client,
		log:    log,
	}
}

func (r *userRepository) Create(ctx context.Context, u *domainUser.User) error {
	client := r.client.Querier(ctx)

	created, err := client.User.Create().
		SetID(u.ID).
		SetEmail(u.Email).
		SetPasswordHash(u.PasswordHash).
		SetAccountID(u.AccountID).
		SetStatus(string(u.Status)).
		SetCreatedAt(u.CreatedAt).
		SetUpdatedAt(u.UpdatedAt).
		SetCreatedBy(u.CreatedBy).
		SetUpdatedBy(u.UpdatedBy).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			return ierr.WithError(err).
				WithHint("User with this email already exists").
				WithReportableDetails(map[string]interface{}{
					"email": u.Email,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
		return ierr.WithError(err).
			WithHint("Failed to create user").
			Mark(ierr.ErrDatabase)
	}

	*u = *domainUser.FromEnt(created)
	return nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*domainUser.User, error) {
	client := r.client.Querier(ctx)

	u, err := client.User.Query().
		Where(
			user.ID(id),
			user.AccountID(types.GetAccountID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("User not found").
				WithReportableDetails(map[string]interface{}{
					"user_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve user").
			Mark(ierr.ErrDatabase)
	}

	return domainUser.FromEnt(u), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	client := r.client.Querier(ctx)

	u, err := client.User.Query().
		Where(
			user.Email(email),
			user.AccountID(types.GetAccountID(ctx)),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHint("User not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to retrieve user").
			Mark(ierr.ErrDatabase)
	}

	return domainUser.FromEnt(u), nil
}
