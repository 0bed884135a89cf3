package repository

import (
	"errors"

	"clinic-data-store/internal/domain/entity"
	domainRepo "clinic-data-store/internal/domain/repository"
	"clinic-data-store/pkg/dberr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct{}

func NewMedicalRecordRepository() domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{}
}

func (r *medicalRecordRepository) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	return dberr.Translate(db.Create(record).Error)
}

func (r *medicalRecordRepository) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	return dberr.Translate(db.Save(record).Error)
}

func (r *medicalRecordRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.MedicalRecord{})
	return result.RowsAffected, dberr.Translate(result.Error)
}

func (r *medicalRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error) {
	var record entity.MedicalRecord
	err := db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := db.Where("patient_id = ?", patientID).
		Order("record_date DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
