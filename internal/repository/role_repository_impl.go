package repository

import (
	"errors"

	"clinic-data-store/internal/domain/entity"
	domainRepo "clinic-data-store/internal/domain/repository"
	"clinic-data-store/pkg/dberr"

	"gorm.io/gorm"
)

type roleRepository struct{}

func NewRoleRepository() domainRepo.RoleRepository {
	return &roleRepository{}
}

func (r *roleRepository) Create(db *gorm.DB, role *entity.Role) error {
	return dberr.Translate(db.Create(role).Error)
}

func (r *roleRepository) FindByName(db *gorm.DB, name string) (*entity.Role, error) {
	var role entity.Role
	err := db.Where("name = ?", name).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindAll(db *gorm.DB) ([]entity.Role, error) {
	var roles []entity.Role
	err := db.Order("id").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
