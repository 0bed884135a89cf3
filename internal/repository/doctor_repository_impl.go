package repository

import (
	"errors"

	"clinic-data-store/internal/domain/entity"
	domainRepo "clinic-data-store/internal/domain/repository"
	"clinic-data-store/pkg/dberr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return dberr.Translate(db.Create(doctor).Error)
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return dberr.Translate(db.Save(doctor).Error)
}

func (r *doctorRepository) Delete(db *gorm.DB, userID uuid.UUID) (int64, error) {
	result := db.Where("user_id = ?", userID).Delete(&entity.Doctor{})
	return result.RowsAffected, dberr.Translate(result.Error)
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("User").Preload("Specialties").Preload("Clinics").
		Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByLicenseNumber(db *gorm.DB, license string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("license_number = ?", license).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindBySpecialty(db *gorm.DB, specialtyID int) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Joins("JOIN doctor_specialties ds ON ds.doctor_id = doctors.user_id").
		Where("ds.specialty_id = ?", specialtyID).
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) AddSpecialty(db *gorm.DB, doctor *entity.Doctor, specialty *entity.Specialty) error {
	return dberr.Translate(db.Model(doctor).Association("Specialties").Append(specialty))
}

func (r *doctorRepository) RemoveSpecialty(db *gorm.DB, doctor *entity.Doctor, specialty *entity.Specialty) error {
	return dberr.Translate(db.Model(doctor).Association("Specialties").Delete(specialty))
}

func (r *doctorRepository) AddClinic(db *gorm.DB, doctor *entity.Doctor, clinic *entity.Clinic) error {
	return dberr.Translate(db.Model(doctor).Association("Clinics").Append(clinic))
}

func (r *doctorRepository) RemoveClinic(db *gorm.DB, doctor *entity.Doctor, clinic *entity.Clinic) error {
	return dberr.Translate(db.Model(doctor).Association("Clinics").Delete(clinic))
}
