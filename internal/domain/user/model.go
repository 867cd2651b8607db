package user

import (
	"github.com/rentdesk/rentdesk/ent"
	ierr "github.com/rentdesk/rentdesk/internal/errors"
	"github.com/rentdesk/rentdesk/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// User represents a platform user belonging to an account
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	types.BaseModel
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Email == "" {
		return ierr.NewError("invalid email").
			WithHint("Email is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// SetPassword hashes and stores the given plaintext password
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to hash password").
			Mark(ierr.ErrSystem)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the given plaintext password matches
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// FromEnt converts an Ent user to a domain user
func FromEnt(u *ent.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		BaseModel: types.BaseModel{
			AccountID: u.AccountID,
			Status:    types.Status(u.Status),
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
			CreatedBy: u.CreatedBy,
			UpdatedBy: u.UpdatedBy,
		},
	}
}
