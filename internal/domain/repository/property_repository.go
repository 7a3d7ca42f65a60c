package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrPropertyNotFound is returned when no property matches the lookup.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrPropertyReferenced is returned when a foreign key still points at the property.
	ErrPropertyReferenced = errors.New("property is still referenced")
)

// PropertyRepository defines the property operations the favorites feature relies on.
// Listing, search and editing of properties live outside this service.
type PropertyRepository interface {
	// Exists reports whether a property with the ID is present.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// DeleteOwned removes the property if it belongs to ownerID. Returns
	// ErrPropertyNotFound when no row matched both and ErrPropertyReferenced
	// when favorites still reference it.
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error
}
