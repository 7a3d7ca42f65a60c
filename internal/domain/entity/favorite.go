package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a bookmark of a property by a user. At most one exists per
// (UserID, PropertyID) pair.
type Favorite struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	PropertyID uuid.UUID
	CreatedAt  time.Time
}

// FavoriteProperty is a favorited listing enriched with its owner's public
// contact details, as shown in a user's favorites list.
type FavoriteProperty struct {
	Property

	OwnerName   *string // nil when the owner account no longer exists.
	OwnerPhone  *string
	OwnerAvatar *string
	IsFavorite  bool // Always true; kept for client convenience.
	FavoritedAt time.Time
}
