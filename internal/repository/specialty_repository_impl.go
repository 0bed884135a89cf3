package repository

import (
	"errors"

	"clinic-data-store/internal/domain/entity"
	domainRepo "clinic-data-store/internal/domain/repository"
	"clinic-data-store/pkg/dberr"

	"gorm.io/gorm"
)

type specialtyRepository struct{}

func NewSpecialtyRepository() domainRepo.SpecialtyRepository {
	return &specialtyRepository{}
}

func (r *specialtyRepository) Create(db *gorm.DB, specialty *entity.Specialty) error {
	return dberr.Translate(db.Create(specialty).Error)
}

func (r *specialtyRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Specialty{})
	return result.RowsAffected, dberr.Translate(result.Error)
}

func (r *specialtyRepository) FindByName(db *gorm.DB, name string) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := db.Where("name = ?", name).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *specialtyRepository) FindAll(db *gorm.DB) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	err := db.Order("name").Find(&specialties).Error
	if err != nil {
		return nil, err
	}
	return specialties, nil
}
