package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table.
type FavoriteModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_property"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_property;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// FavoritePropertyRow is the scan target of the favorites listing query:
// the property columns plus the owner's contact fields and the favorite timestamp.
type FavoritePropertyRow struct {
	PropertyModel

	OwnerName   *string
	OwnerPhone  *string
	OwnerAvatar *string
	IsFavorite  bool
	FavoritedAt time.Time
}
