package repository

import (
	"errors"

	"clinic-data-store/internal/domain/entity"
	domainRepo "clinic-data-store/internal/domain/repository"
	"clinic-data-store/pkg/dberr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return dberr.Translate(db.Create(log).Error)
}

func (r *auditLogRepository) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := db.Order("created_at DESC").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

func (r *auditLogRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByObject(db *gorm.DB, objectType, objectID string) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := db.Where("object_type = ? AND object_id = ?", objectType, objectID).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
