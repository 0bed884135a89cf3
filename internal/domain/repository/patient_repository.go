package repository

import (
	"clinic-data-store/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, userID uuid.UUID) (int64, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error)
	FindByMedicalRecordNumber(db *gorm.DB, mrn string) (*entity.Patient, error)
}
