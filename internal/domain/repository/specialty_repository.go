package repository

import (
	"clinic-data-store/internal/domain/entity"

	"gorm.io/gorm"
)

type SpecialtyRepository interface {
	Create(db *gorm.DB, specialty *entity.Specialty) error
	Delete(db *gorm.DB, id int) (int64, error)
	FindByName(db *gorm.DB, name string) (*entity.Specialty, error)
	FindAll(db *gorm.DB) ([]entity.Specialty, error)
}
