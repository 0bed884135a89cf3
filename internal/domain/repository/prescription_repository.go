package repository

import (
	"clinic-data-store/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) ([]entity.Prescription, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Prescription, error)
}
