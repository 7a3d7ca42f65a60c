package entity

import (
	"time"

	"github.com/google/uuid"
)

// Property is a listing published by an owner. This service only reads
// listings and deletes them on behalf of their owner; everything else about
// their lifecycle belongs to the listing service.
type Property struct {
	ID              uuid.UUID
	OwnerID         *uuid.UUID
	Title           string
	Description     string
	PropertyType    string // e.g. "apartment", "house", "land".
	TransactionType string // "sale" or "rent".
	Price           float64
	Surface         float64 // Square meters.
	Rooms           int
	Bedrooms        int
	Bathrooms       int
	Address         string
	City            string
	PostalCode      string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
