package repository

import (
	"clinic-data-store/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogRepository is append-only: there is deliberately no Update or
// Delete.
type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	FindAll(db *gorm.DB) ([]entity.AuditLog, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.AuditLog, error)
	FindByObject(db *gorm.DB, objectType, objectID string) ([]entity.AuditLog, error)
}
