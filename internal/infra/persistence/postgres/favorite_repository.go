package postgres

import (
	"context"

	"estate/internal/domain/entity"
	domainerrors "estate/internal/domain/errors"
	"estate/internal/domain/repository"
	"estate/internal/errors"
	"estate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// listFavoritesQuery joins favorites to their listings. The inner join on
// properties drops favorites whose listing is gone; owner columns are nullable.
const listFavoritesQuery = `
SELECT
	p.*,
	u.name AS owner_name,
	u.phone AS owner_phone,
	u.avatar AS owner_avatar,
	true AS is_favorite,
	f.created_at AS favorited_at
FROM favorites f
JOIN properties p ON f.property_id = p.id
LEFT JOIN users u ON p.owner_id = u.id
WHERE f.user_id = ?
ORDER BY f.created_at DESC`

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FavoriteProperty, error) {
	var rows []model.FavoritePropertyRow
	if err := repo.db.WithContext(ctx).Raw(listFavoritesQuery, userID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.FavoriteProperty, 0, len(rows))
	for i := range rows {
		favorites = append(favorites, toFavoritePropertyDomain(&rows[i]))
	}

	return favorites, nil
}

func (repo *favoriteRepository) Exists(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite existence")
	}

	return count > 0, nil
}

func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := &model.FavoriteModel{
		ID:         favorite.ID,
		UserID:     favorite.UserID,
		PropertyID: favorite.PropertyID,
		CreatedAt:  favorite.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPropertyNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

func (repo *favoriteRepository) Delete(ctx context.Context, userID, propertyID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func (repo *favoriteRepository) DeleteByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete favorites of property")
	}

	return result.RowsAffected, nil
}

func toFavoritePropertyDomain(row *model.FavoritePropertyRow) *entity.FavoriteProperty {
	return &entity.FavoriteProperty{
		Property:    *toPropertyDomain(&row.PropertyModel),
		OwnerName:   row.OwnerName,
		OwnerPhone:  row.OwnerPhone,
		OwnerAvatar: row.OwnerAvatar,
		IsFavorite:  row.IsFavorite,
		FavoritedAt: row.FavoritedAt,
	}
}
