package repository

import (
	"errors"

	"clinic-data-store/internal/domain/entity"
	domainRepo "clinic-data-store/internal/domain/repository"
	"clinic-data-store/pkg/dberr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return dberr.Translate(db.Create(patient).Error)
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return dberr.Translate(db.Save(patient).Error)
}

func (r *patientRepository) Delete(db *gorm.DB, userID uuid.UUID) (int64, error) {
	result := db.Where("user_id = ?", userID).Delete(&entity.Patient{})
	return result.RowsAffected, dberr.Translate(result.Error)
}

func (r *patientRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Preload("User").Where("user_id = ?", userID).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByMedicalRecordNumber(db *gorm.DB, mrn string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("medical_record_number = ?", mrn).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}
