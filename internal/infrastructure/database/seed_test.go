package database

import (
	"testing"

	"clinic-data-store/config"
	"clinic-data-store/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestSeedRoles_FreshDatabase(t *testing.T) {
	db, mock := setupMockDB(t)

	for i := range entity.SeededRoleNames() {
		mock.ExpectQuery(`SELECT \* FROM "roles"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}))
		mock.ExpectQuery(`INSERT INTO "roles"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(i + 1))
	}

	require.NoError(t, SeedRoles(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Seeding an already-seeded database inserts nothing: the role set stays at
// exactly the five fixed names.
func TestSeedRoles_Idempotent(t *testing.T) {
	db, mock := setupMockDB(t)

	for i, name := range entity.SeededRoleNames() {
		mock.ExpectQuery(`SELECT \* FROM "roles"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).
				AddRow(i+1, name, ""))
	}

	require.NoError(t, SeedRoles(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedAdminUser_SkippedWithoutCredentials(t *testing.T) {
	db, mock := setupMockDB(t)

	// No queries expected at all.
	require.NoError(t, SeedAdminUser(db, config.AdminConfig{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
