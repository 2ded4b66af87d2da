// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"canteen/internal/domain/entity"
)

// LoginInput defines the data required for a member to log in. The household
// shares one passphrase per member, compared by exact match.
type LoginInput struct {
	Name     string
	Password string
}

// LoginOutput returns the session token and the member after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// SessionUsecase defines the interface for session management operations.
// Login writes the current-user record through to storage so a restarted
// service resumes the same session; Logout clears both the record and the
// member's cart.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, userID string) error
	Current(ctx context.Context, userID string) (*entity.User, error)

	// Members lists all family members with passwords blanked, for the
	// login picker shown before any session exists.
	Members(ctx context.Context) ([]entity.User, error)
}
