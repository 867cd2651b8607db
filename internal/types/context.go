package types

import (
	"context"

	ierr "github.com/rentdesk/rentdesk/internal/errors"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID     ContextKey = "ctx_request_id"
	CtxAccountID     ContextKey = "ctx_account_id"
	CtxUserID        ContextKey = "ctx_user_id"
	CtxDBTransaction ContextKey = "ctx_db_transaction"

	// Default values used by scripts and tests
	DefaultAccountID = "00000000-0000-0000-0000-000000000000"
	DefaultUserID    = "00000000-0000-0000-0000-000000000000"
)

// Common HTTP headers
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderAuthorization = "Authorization"
)

func GetAccountID(ctx context.Context) string {
	if accountID, ok := ctx.Value(CtxAccountID).(string); ok {
		return accountID
	}
	return ""
}

func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(CtxUserID).(string); ok {
		return userID
	}
	return ""
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// SetAccountID sets the account ID in the context
func SetAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, CtxAccountID, accountID)
}

// SetUserID sets the user ID in the context
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxUserID, userID)
}

// ValidateAccountContext validates that the caller's account scope is present.
// Every data access path must call this (directly or via the scope resolver)
// before issuing queries; a missing account scope fails closed.
func ValidateAccountContext(ctx context.Context) error {
	if ctx == nil {
		return ierr.NewError("context is nil").
			WithHint("Request context is missing").
			Mark(ierr.ErrPermissionDenied)
	}

	if GetAccountID(ctx) == "" {
		return ierr.NewError("no account scope found in context").
			WithHint("Caller could not be resolved to an account").
			Mark(ierr.ErrPermissionDenied)
	}

	return nil
}
