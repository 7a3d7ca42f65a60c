package usecase

import (
	"context"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase manages a user's bookmarked properties.
type FavoriteUsecase interface {
	// ListFavorites returns the user's favorites, most recent first. Never nil.
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteProperty, error)
	AddFavorite(ctx context.Context, userID, propertyID uuid.UUID) (*entity.Favorite, error)
	RemoveFavorite(ctx context.Context, userID, propertyID uuid.UUID) error
}
