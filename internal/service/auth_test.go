package service

import (
	"context"
	"testing"

	"github.com/rentdesk/rentdesk/internal/api/dto"
	"github.com/rentdesk/rentdesk/internal/domain/account"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/testutil"
	"github.com/rentdesk/rentdesk/internal/types"
	"github.com/stretchr/testify/suite"
)

type AuthServiceSuite struct {
	testutil.BaseServiceTestSuite
	service AuthService
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	params := ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		DB:          s.GetDB(),
		AccountRepo: s.GetStores().AccountRepo,
		UserRepo:    s.GetStores().UserRepo,
	}
	s.service = NewAuthService(params, NewAccountScopeService(params))

	s.NoError(s.GetStores().AccountRepo.Create(context.Background(), &account.Account{
		ID:     "acct_auth",
		Name:   "Acme Rentals",
		Active: true,
		Status: types.StatusPublished,
	}))
}

func (s *AuthServiceSuite) TestSignUpAndLogin() {
	signup, err := s.service.SignUp(context.Background(), &dto.SignUpRequest{
		AccountID: "acct_auth",
		Email:     "admin@acme.test",
		Password:  "correct-horse",
	})
	s.NoError(err)
	s.NotEmpty(signup.Token)
	s.Equal("acct_auth", signup.AccountID)

	login, err := s.service.Login(context.Background(), &dto.LoginRequest{
		AccountID: "acct_auth",
		Email:     "admin@acme.test",
		Password:  "correct-horse",
	})
	s.NoError(err)
	s.Equal(signup.UserID, login.UserID)
}

func (s *AuthServiceSuite) TestLoginRejectsWrongPassword() {
	_, err := s.service.SignUp(context.Background(), &dto.SignUpRequest{
		AccountID: "acct_auth",
		Email:     "admin@acme.test",
		Password:  "correct-horse",
	})
	s.NoError(err)

	_, err = s.service.Login(context.Background(), &dto.LoginRequest{
		AccountID: "acct_auth",
		Email:     "admin@acme.test",
		Password:  "wrong-horse",
	})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AuthServiceSuite) TestLoginRejectsUnknownUser() {
	_, err := s.service.Login(context.Background(), &dto.LoginRequest{
		AccountID: "acct_auth",
		Email:     "nobody@acme.test",
		Password:  "whatever1",
	})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AuthServiceSuite) TestSignUpRejectsUnknownAccount() {
	_, err := s.service.SignUp(context.Background(), &dto.SignUpRequest{
		AccountID: "acct_nope",
		Email:     "admin@acme.test",
		Password:  "correct-horse",
	})
	s.Error(err)
	s.True(ierr.IsPermissionDenied(err))
}

func (s *AuthServiceSuite) TestSignUpRejectsDuplicateEmail() {
	_, err := s.service.SignUp(context.Background(), &dto.SignUpRequest{
		AccountID: "acct_auth",
		Email:     "admin@acme.test",
		Password:  "correct-horse",
	})
	s.NoError(err)

	_, err = s.service.SignUp(context.Background(), &dto.SignUpRequest{
		AccountID: "acct_auth",
		Email:     "admin@acme.test",
		Password:  "another-pass",
	})
	s.Error(err)
	s.True(ierr.IsAlreadyExists(err))
}
