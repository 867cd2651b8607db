package dto

import (
	ierr "github.com/rentdesk/rentdesk/internal/errors"
)

// SignUpRequest registers a user under an existing account
type SignUpRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Email     string `json:"email" binding:"required" validate:"required,email"`
	Password  string `json:"password" binding:"required" validate:"required,min=8"`
}

// Validate validates the request
func (r *SignUpRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return ierr.NewError("missing credentials").
			WithHint("Email and password are required").
			Mark(ierr.ErrValidation)
	}
	if len(r.Password) < 8 {
		return ierr.NewError("weak password").
			WithHint("Password must be at least 8 characters").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// LoginRequest authenticates a user
type LoginRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Email     string `json:"email" binding:"required" validate:"required,email"`
	Password  string `json:"password" binding:"required"`
}

// Validate validates the request
func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return ierr.NewError("missing credentials").
			WithHint("Email and password are required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// AuthResponse carries the issued session token
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	AccountID string `json:"account_id"`
}
