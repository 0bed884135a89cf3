package repository

import (
	"clinic-data-store/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	Update(db *gorm.DB, user *entity.User) error
	// Delete cascades to the user's doctor/patient row and, transitively,
	// availabilities and specialty/clinic links.
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
}
