package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel mirrors the 'properties' table. Rows are written by the
// listing service; this service reads them and deletes them for their owner.
type PropertyModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	OwnerID         *uuid.UUID `gorm:"type:uuid;index"`
	Title           string     `gorm:"type:varchar(255);not null"`
	Description     string     `gorm:"type:text"`
	PropertyType    string     `gorm:"type:varchar(50)"`
	TransactionType string     `gorm:"type:varchar(20)"`
	Price           float64    `gorm:"type:numeric(12,2)"`
	Surface         float64    `gorm:"type:numeric(10,2)"`
	Rooms           int
	Bedrooms        int
	Bathrooms       int
	Address         string `gorm:"type:varchar(255)"`
	City            string `gorm:"type:varchar(100)"`
	PostalCode      string `gorm:"type:varchar(20)"`
	Status          string `gorm:"type:varchar(20)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyModel) TableName() string {
	return "properties"
}
