package service

import (
	"estate/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// IssueToken signs a token carrying the user's id and email, valid for the configured TTL.
	IssueToken(user *entity.User) (string, error)

	// ValidateToken verifies signature, algorithm and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
