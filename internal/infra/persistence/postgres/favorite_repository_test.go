package postgres

import (
	"context"
	"testing"
	"time"

	"estate/internal/domain/entity"
	"estate/internal/domain/repository"
	"estate/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	deleteFavoritePattern            = `^DELETE FROM "favorites" WHERE \(?user_id = \$1 AND property_id = \$2\)?$`
	deleteFavoritesByPropertyPattern = `^DELETE FROM "favorites" WHERE property_id = \$1$`
	insertFavoritePattern            = `^INSERT INTO "favorites"`
	listFavoritesPattern             = `(?s)FROM favorites f\s+JOIN properties p ON f\.property_id = p\.id\s+` +
		`LEFT JOIN users u ON p\.owner_id = u\.id\s+WHERE f\.user_id = \$1\s+ORDER BY f\.created_at DESC$`
)

func TestFavoriteRepository_Delete_ScopedToUserAndProperty(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewFavoriteRepository(db)
	userA, propertyID := uuid.New(), uuid.New()

	mock.ExpectExec(deleteFavoritePattern).
		WithArgs(userA, propertyID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), userA, propertyID))
}

func TestFavoriteRepository_Delete_NothingRemoved(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewFavoriteRepository(db)
	userID, propertyID := uuid.New(), uuid.New()

	mock.ExpectExec(deleteFavoritePattern).
		WithArgs(userID, propertyID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), userID, propertyID)

	assert.ErrorIs(t, err, repository.ErrFavoriteNotFound)
}

func TestFavoriteRepository_Delete_StoreFailure(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewFavoriteRepository(db)
	userID, propertyID := uuid.New(), uuid.New()
	dbErr := errors.New("connection reset")

	mock.ExpectExec(deleteFavoritePattern).
		WithArgs(userID, propertyID).
		WillReturnError(dbErr)

	err := repo.Delete(context.Background(), userID, propertyID)

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, repository.ErrFavoriteNotFound)
}

func TestFavoriteRepository_DeleteByProperty(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewFavoriteRepository(db)
	propertyID := uuid.New()

	mock.ExpectExec(deleteFavoritesByPropertyPattern).
		WithArgs(propertyID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteByProperty(context.Background(), propertyID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestFavoriteRepository_Create_ConstraintMapping(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"unique sqlstate", &pgconn.PgError{Code: pgCodeUniqueViolation}, repository.ErrDuplicateFavorite},
		{"translated unique", gorm.ErrDuplicatedKey, repository.ErrDuplicateFavorite},
		{"foreign key sqlstate", &pgconn.PgError{Code: pgCodeForeignKeyViolation}, repository.ErrPropertyNotFound},
		{"translated foreign key", gorm.ErrForeignKeyViolated, repository.ErrPropertyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockGormDB(t)
			repo := NewFavoriteRepository(db)

			mock.ExpectQuery(insertFavoritePattern).WillReturnError(tt.dbErr)

			err := repo.Create(context.Background(), &entity.Favorite{UserID: uuid.New(), PropertyID: uuid.New()})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFavoriteRepository_Create_FillsGeneratedID(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewFavoriteRepository(db)
	generatedID := uuid.New()

	mock.ExpectQuery(insertFavoritePattern).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(generatedID.String()))

	favorite := &entity.Favorite{UserID: uuid.New(), PropertyID: uuid.New()}
	err := repo.Create(context.Background(), favorite)

	require.NoError(t, err)
	assert.Equal(t, generatedID, favorite.ID)
	assert.False(t, favorite.CreatedAt.IsZero())
}

func TestFavoriteRepository_ListByUser(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewFavoriteRepository(db)
	userID, ownerID := uuid.New(), uuid.New()
	newer, older := uuid.New(), uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "price", "owner_name", "owner_phone", "owner_avatar", "is_favorite", "favorited_at"}).
		AddRow(newer.String(), ownerID.String(), "Loft", 250000.0, "Alice", "0600000000", nil, true, now).
		AddRow(older.String(), nil, "Studio", 90000.0, nil, nil, nil, true, now.Add(-time.Hour))
	mock.ExpectQuery(listFavoritesPattern).
		WithArgs(userID).
		WillReturnRows(rows)

	favorites, err := repo.ListByUser(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, newer, favorites[0].ID)
	assert.Equal(t, "Loft", favorites[0].Title)
	require.NotNil(t, favorites[0].OwnerName)
	assert.Equal(t, "Alice", *favorites[0].OwnerName)
	assert.Nil(t, favorites[0].OwnerAvatar)
	assert.True(t, favorites[0].IsFavorite)
	assert.Equal(t, now, favorites[0].FavoritedAt)

	assert.Equal(t, older, favorites[1].ID)
	assert.Nil(t, favorites[1].OwnerID)
	assert.Nil(t, favorites[1].OwnerName)
}

func TestFavoriteRepository_ListByUser_Empty(t *testing.T) {
	db, mock := newMockGormDB(t)
	repo := NewFavoriteRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(listFavoritesPattern).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_favorite", "favorited_at"}))

	favorites, err := repo.ListByUser(context.Background(), userID)

	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}

func TestListFavoritesQuery_SkipsDeletedProperties(t *testing.T) {
	assert.NotContains(t, listFavoritesQuery, "LEFT JOIN properties")
	assert.Contains(t, listFavoritesQuery, "\nJOIN properties p ON f.property_id = p.id")
}
