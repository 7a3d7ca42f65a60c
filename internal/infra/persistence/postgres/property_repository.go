package postgres

import (
	"context"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"
	"estate/internal/errors"
	"estate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

func (repo *propertyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", id).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check property existence")
	}

	return count > 0, nil
}

func (repo *propertyRepository) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&model.PropertyModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return errors.Join(repository.ErrPropertyReferenced, result.Error)
		}

		return errors.Wrap(result.Error, "failed to delete property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

func toPropertyDomain(m *model.PropertyModel) *entity.Property {
	if m == nil {
		return nil
	}

	return &entity.Property{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Title:           m.Title,
		Description:     m.Description,
		PropertyType:    m.PropertyType,
		TransactionType: m.TransactionType,
		Price:           m.Price,
		Surface:         m.Surface,
		Rooms:           m.Rooms,
		Bedrooms:        m.Bedrooms,
		Bathrooms:       m.Bathrooms,
		Address:         m.Address,
		City:            m.City,
		PostalCode:      m.PostalCode,
		Status:          m.Status,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
