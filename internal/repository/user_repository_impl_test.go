package repository

import (
	"testing"

	"clinic-data-store/internal/domain/entity"
	"clinic-data-store/pkg/dberr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreate_DuplicateEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository()

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "users_email_key",
			TableName:      "users",
		})

	user := &entity.User{
		RoleID:       3,
		Email:        "taken@example.com",
		PasswordHash: "hash",
		FullName:     "Duplicate User",
	}
	err := repo.Create(db, user)

	require.Error(t, err)
	assert.True(t, dberr.IsUnique(err), "duplicate email must surface as a unique violation")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreate_MissingRole(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository()

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{
			Code:           "23503",
			ConstraintName: "users_role_id_fkey",
			TableName:      "users",
		})

	err := repo.Create(db, &entity.User{
		RoleID:       999,
		Email:        "orphan@example.com",
		PasswordHash: "hash",
		FullName:     "No Role",
	})

	require.Error(t, err)
	assert.True(t, dberr.IsForeignKey(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDelete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository()
	id := uuid.New()

	// The doctor/patient rows and their availability rows go with the user
	// via the ON DELETE CASCADE declared in the schema; only the users
	// statement reaches the database.
	mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Delete(db, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserFindByEmail_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role_id", "email"}))

	user, err := repo.FindByEmail(db, "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}
