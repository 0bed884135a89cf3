package repository

import (
	"clinic-data-store/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	Update(db *gorm.DB, record *entity.MedicalRecord) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalRecord, error)
}
