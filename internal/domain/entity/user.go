// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the principal of the system: a registered account that can log in
// and curate favorite properties.
type User struct {
	ID           uuid.UUID // Assigned by the store on creation.
	Email        string    // Unique login identifier, compared exactly as stored.
	PasswordHash string    // bcrypt digest. Never leaves the service layer.
	Name         string    // Display name.
	Phone        string    // Contact phone number, may be empty.
	Avatar       *string   // Reference to the avatar image, nil when unset.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
