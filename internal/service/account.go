package service

import (
	"context"

	"github.com/rentdesk/rentdesk/internal/api/dto"
)

// AccountService provisions and manages accounts
type AccountService interface {
	CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountResponse, error)
	GetAccount(ctx context.Context, id string) (*dto.AccountResponse, error)
}

type accountService struct {
	ServiceParams
}

// NewAccountService creates a new account service
func NewAccountService(params ServiceParams) AccountService {
	return &accountService{
		ServiceParams: params,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := req.ToAccount()
	if err := s.AccountRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.Logger.Infow("provisioned account",
		"account_id", a.ID,
		"name", a.Name,
	)

	return &dto.AccountResponse{Account: a}, nil
}

func (s *accountService) GetAccount(ctx context.Context, id string) (*dto.AccountResponse, error) {
	a, err := s.AccountRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.AccountResponse{Account: a}, nil
}
