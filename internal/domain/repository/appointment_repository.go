package repository

import (
	"time"

	"clinic-data-store/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	// FindOverlapping lists appointments for the doctor intersecting
	// [start, end). It only accelerates an external overlap check; Create
	// never rejects an overlap. Callers wanting overlap prevention must run
	// this and the insert inside one serializable transaction.
	FindOverlapping(db *gorm.DB, doctorID uuid.UUID, start, end time.Time) ([]entity.Appointment, error)
}
