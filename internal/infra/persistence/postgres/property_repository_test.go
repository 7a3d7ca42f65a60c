package postgres

import (
	"context"
	"database/sql/driver"
	"testing"

	"estate/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

const deleteOwnedPropertyPattern = `^DELETE FROM "properties" WHERE \(?id = \$1 AND owner_id = \$2\)?$`

func TestPropertyRepository_DeleteOwned(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		dbErr   error
		wantErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "not owned or missing", result: sqlmock.NewResult(0, 0), wantErr: repository.ErrPropertyNotFound},
		{name: "still referenced", dbErr: &pgconn.PgError{Code: pgCodeForeignKeyViolation}, wantErr: repository.ErrPropertyReferenced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockGormDB(t)
			repo := NewPropertyRepository(db)
			propertyID, ownerID := uuid.New(), uuid.New()

			exec := mock.ExpectExec(deleteOwnedPropertyPattern).WithArgs(propertyID, ownerID)
			if tt.dbErr != nil {
				exec.WillReturnError(tt.dbErr)
			} else {
				exec.WillReturnResult(tt.result)
			}

			err := repo.DeleteOwned(context.Background(), propertyID, ownerID)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
