package repository

import (
	"errors"

	"clinic-data-store/internal/domain/entity"
	domainRepo "clinic-data-store/internal/domain/repository"
	"clinic-data-store/pkg/dberr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return dberr.Translate(db.Create(prescription).Error)
}

func (r *prescriptionRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Prescription{})
	return result.RowsAffected, dberr.Translate(result.Error)
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Where("id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Where("appointment_id = ?", appointmentID).
		Order("created_at").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Where("doctor_id = ?", doctorID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}
