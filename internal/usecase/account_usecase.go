// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"estate/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
// Shape validation happens before this reaches the use case.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by both registration and login: a freshly issued
// session token and the authenticated user.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AccountUsecase defines account creation and credential verification.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
