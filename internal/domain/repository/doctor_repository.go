package repository

import (
	"clinic-data-store/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	Update(db *gorm.DB, doctor *entity.Doctor) error
	// Delete fails with a foreign key ConstraintViolation while any
	// prescription or appointment still references the doctor.
	Delete(db *gorm.DB, userID uuid.UUID) (int64, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindByLicenseNumber(db *gorm.DB, license string) (*entity.Doctor, error)
	FindBySpecialty(db *gorm.DB, specialtyID int) ([]entity.Doctor, error)
	AddSpecialty(db *gorm.DB, doctor *entity.Doctor, specialty *entity.Specialty) error
	RemoveSpecialty(db *gorm.DB, doctor *entity.Doctor, specialty *entity.Specialty) error
	AddClinic(db *gorm.DB, doctor *entity.Doctor, clinic *entity.Clinic) error
	RemoveClinic(db *gorm.DB, doctor *entity.Doctor, clinic *entity.Clinic) error
}
