package handler

import (
	"time"

	"estate/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public projection of an account. It never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse adds the avatar reference to UserResponse.
type ProfileResponse struct {
	UserResponse

	Avatar *string `json:"avatar"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// FavoritePropertyResponse is one entry of the favorites list.
type FavoritePropertyResponse struct {
	ID              uuid.UUID  `json:"id"`
	OwnerID         *uuid.UUID `json:"owner_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	PropertyType    string     `json:"property_type"`
	TransactionType string     `json:"transaction_type"`
	Price           float64    `json:"price"`
	Surface         float64    `json:"surface"`
	Rooms           int        `json:"rooms"`
	Bedrooms        int        `json:"bedrooms"`
	Bathrooms       int        `json:"bathrooms"`
	Address         string     `json:"address"`
	City            string     `json:"city"`
	PostalCode      string     `json:"postal_code"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	OwnerName       *string    `json:"owner_name"`
	OwnerPhone      *string    `json:"owner_phone"`
	OwnerAvatar     *string    `json:"owner_avatar"`
	IsFavorite      bool       `json:"is_favorite"`
	FavoritedAt     time.Time  `json:"favorited_at"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

func toProfileResponse(u *entity.User) ProfileResponse {
	return ProfileResponse{UserResponse: toUserResponse(u), Avatar: u.Avatar}
}

func toFavoritePropertyResponses(favorites []*entity.FavoriteProperty) []FavoritePropertyResponse {
	out := make([]FavoritePropertyResponse, 0, len(favorites))
	for _, f := range favorites {
		p := f.Property
		out = append(out, FavoritePropertyResponse{
			ID:              p.ID,
			OwnerID:         p.OwnerID,
			Title:           p.Title,
			Description:     p.Description,
			PropertyType:    p.PropertyType,
			TransactionType: p.TransactionType,
			Price:           p.Price,
			Surface:         p.Surface,
			Rooms:           p.Rooms,
			Bedrooms:        p.Bedrooms,
			Bathrooms:       p.Bathrooms,
			Address:         p.Address,
			City:            p.City,
			PostalCode:      p.PostalCode,
			Status:          p.Status,
			CreatedAt:       p.CreatedAt,
			UpdatedAt:       p.UpdatedAt,
			OwnerName:       f.OwnerName,
			OwnerPhone:      f.OwnerPhone,
			OwnerAvatar:     f.OwnerAvatar,
			IsFavorite:      f.IsFavorite,
			FavoritedAt:     f.FavoritedAt,
		})
	}

	return out
}
