package repository

import (
	"context"
	"errors"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrFavoriteNotFound is returned when the (user, property) pair has no favorite row.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrDuplicateFavorite is returned when the (user, property) unique constraint rejects an insert.
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository manages the favorites relation between users and properties.
type FavoriteRepository interface {
	// ListByUser returns the user's favorited properties joined with owner
	// contact data, most recently favorited first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteProperty, error)

	// Exists reports whether the user already favorited the property.
	Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)

	// Create persists a new favorite. ID and CreatedAt are filled in on success.
	// Returns ErrDuplicateFavorite or ErrPropertyNotFound on constraint violations.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite for the pair. Returns ErrFavoriteNotFound
	// when nothing was deleted.
	Delete(ctx context.Context, userID, propertyID uuid.UUID) error

	// DeleteByProperty removes every favorite referencing the property and
	// returns how many rows were removed.
	DeleteByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
}
