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

func TestAvailabilityCreate_DayOfWeekOutOfRange(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorAvailabilityRepository()

	mock.ExpectQuery(`INSERT INTO "doctor_availabilities"`).
		WillReturnError(&pgconn.PgError{
			Code:           "23514",
			ConstraintName: "doctor_availabilities_day_of_week_check",
			TableName:      "doctor_availabilities",
		})

	err := repo.Create(db, &entity.DoctorAvailability{
		DoctorID:  uuid.New(),
		DayOfWeek: 7, // valid days run 0..6
		StartTime: "09:00",
		EndTime:   "12:00",
	})

	require.Error(t, err)
	assert.True(t, dberr.IsCheck(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityFindByDoctorAndDay(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewDoctorAvailabilityRepository()
	doctorID := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "doctor_id", "day_of_week", "start_time", "end_time"}).
		AddRow(1, doctorID, 1, "09:00:00", "12:00:00").
		AddRow(2, doctorID, 1, "14:00:00", "17:00:00")

	mock.ExpectQuery(`SELECT \* FROM "doctor_availabilities" WHERE doctor_id = \$1 AND day_of_week = \$2`).
		WithArgs(doctorID, 1).
		WillReturnRows(rows)

	availabilities, err := repo.FindByDoctorAndDay(db, doctorID, 1)
	require.NoError(t, err)
	require.Len(t, availabilities, 2)
	assert.Equal(t, "09:00:00", availabilities[0].StartTime)
	assert.Equal(t, "14:00:00", availabilities[1].StartTime)

	assert.NoError(t, mock.ExpectationsWereMet())
}
