package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rentdesk/rentdesk/internal/api/dto"
	"github.com/rentdesk/rentdesk/internal/domain/user"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
)

// AuthService handles user registration and session token issuance. Password
// verification uses bcrypt; tokens are signed JWTs carrying the user and
// account identity.
type AuthService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	ServiceParams
	scope AccountScopeService
}

// NewAuthService creates a new auth service
func NewAuthService(params ServiceParams, scope AccountScopeService) AuthService {
	return &authService{
		ServiceParams: params,
		scope:         scope,
	}
}

func (s *authService) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	scopedCtx, err := s.scope.Resolve(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	u := &user.User{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
		Email:     req.Email,
		BaseModel: types.GetDefaultBaseModel(scopedCtx),
	}
	if err := u.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.UserRepo.Create(scopedCtx, u); err != nil {
		return nil, err
	}

	return s.issueToken(u)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	scopedCtx, err := s.scope.Resolve(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	u, err := s.UserRepo.GetByEmail(scopedCtx, req.Email)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, invalidCredentialsError()
		}
		return nil, err
	}

	if !u.CheckPassword(req.Password) {
		return nil, invalidCredentialsError()
	}

	return s.issueToken(u)
}

func (s *authService) issueToken(u *user.User) (*dto.AuthResponse, error) {
	claims := jwt.MapClaims{
		"user_id":    u.ID,
		"account_id": u.AccountID,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.Config.Auth.Secret))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to issue session token").
			Mark(ierr.ErrSystem)
	}

	return &dto.AuthResponse{
		Token:     signed,
		UserID:    u.ID,
		AccountID: u.AccountID,
	}, nil
}

func invalidCredentialsError() error {
	return ierr.NewError("invalid credentials").
		WithHint("Email or password is incorrect").
		Mark(ierr.ErrPermissionDenied)
}
