package repository

import (
	"clinic-data-store/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorAvailabilityRepository interface {
	Create(db *gorm.DB, availability *entity.DoctorAvailability) error
	Update(db *gorm.DB, availability *entity.DoctorAvailability) error
	Delete(db *gorm.DB, id int) (int64, error)
	FindByID(db *gorm.DB, id int) (*entity.DoctorAvailability, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.DoctorAvailability, error)
	FindByDoctorAndDay(db *gorm.DB, doctorID uuid.UUID, dayOfWeek int) ([]entity.DoctorAvailability, error)
}
