package repository

import (
	"errors"

	"clinic-data-store/internal/domain/entity"
	domainRepo "clinic-data-store/internal/domain/repository"
	"clinic-data-store/pkg/dberr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clinicRepository struct{}

func NewClinicRepository() domainRepo.ClinicRepository {
	return &clinicRepository{}
}

func (r *clinicRepository) Create(db *gorm.DB, clinic *entity.Clinic) error {
	return dberr.Translate(db.Create(clinic).Error)
}

func (r *clinicRepository) Update(db *gorm.DB, clinic *entity.Clinic) error {
	return dberr.Translate(db.Save(clinic).Error)
}

func (r *clinicRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Clinic{})
	return result.RowsAffected, dberr.Translate(result.Error)
}

func (r *clinicRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Clinic, error) {
	var clinic entity.Clinic
	err := db.Where("id = ?", id).First(&clinic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &clinic, nil
}

func (r *clinicRepository) FindAll(db *gorm.DB) ([]entity.Clinic, error) {
	var clinics []entity.Clinic
	err := db.Order("name").Find(&clinics).Error
	if err != nil {
		return nil, err
	}
	return clinics, nil
}
