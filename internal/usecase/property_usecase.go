package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PropertyUsecase covers the property operations owned by this service.
type PropertyUsecase interface {
	// DeleteProperty removes a listing owned by ownerID and applies the
	// configured orphan policy to its favorites.
	DeleteProperty(ctx context.Context, ownerID, propertyID uuid.UUID) error
}
