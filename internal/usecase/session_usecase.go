package usecase

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionUsecase resolves the principal behind an authenticated request.
type SessionUsecase interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
