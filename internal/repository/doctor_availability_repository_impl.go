package repository

import (
	"errors"

	"clinic-data-store/internal/domain/entity"
	domainRepo "clinic-data-store/internal/domain/repository"
	"clinic-data-store/pkg/dberr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorAvailabilityRepository struct{}

func NewDoctorAvailabilityRepository() domainRepo.DoctorAvailabilityRepository {
	return &doctorAvailabilityRepository{}
}

func (r *doctorAvailabilityRepository) Create(db *gorm.DB, availability *entity.DoctorAvailability) error {
	return dberr.Translate(db.Create(availability).Error)
}

func (r *doctorAvailabilityRepository) Update(db *gorm.DB, availability *entity.DoctorAvailability) error {
	return dberr.Translate(db.Save(availability).Error)
}

func (r *doctorAvailabilityRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.DoctorAvailability{})
	return result.RowsAffected, dberr.Translate(result.Error)
}

func (r *doctorAvailabilityRepository) FindByID(db *gorm.DB, id int) (*entity.DoctorAvailability, error) {
	var availability entity.DoctorAvailability
	err := db.Where("id = ?", id).First(&availability).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &availability, nil
}

func (r *doctorAvailabilityRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorAvailability, error) {
	var availabilities []entity.DoctorAvailability
	err := db.Where("doctor_id = ?", doctorID).
		Order("day_of_week, start_time").
		Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *doctorAvailabilityRepository) FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) ([]entity.DoctorAvailability, error) {
	var availabilities []entity.DoctorAvailability
	err := db.Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).
		Order("start_time").
		Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}
