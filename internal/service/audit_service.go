package service

import (
	"clinic-data-store/internal/domain/entity"
	"clinic-data-store/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService appends entries to the audit trail. The table is append-only;
// there is no update or delete path.
type AuditService interface {
	LogCreate(tx *gorm.DB, userID *uuid.UUID, action, objectType, objectID string, newValue interface{}) error
	LogUpdate(tx *gorm.DB, userID *uuid.UUID, action, objectType, objectID string, oldValue, newValue interface{}) error
	LogDelete(tx *gorm.DB, userID *uuid.UUID, action, objectType, objectID string, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) write(tx *gorm.DB, userID *uuid.UUID, action, objectType, objectID string, oldValue, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		UserID:     userID,
		Action:     action,
		ObjectType: objectType,
		ObjectID:   objectID,
		Metadata: entity.JSON{
			"old_value": oldValue,
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

// LogCreate logs a create action
func (s *auditService) LogCreate(tx *gorm.DB, userID *uuid.UUID, action, objectType, objectID string, newValue interface{}) error {
	return s.write(tx, userID, action, objectType, objectID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(tx *gorm.DB, userID *uuid.UUID, action, objectType, objectID string, oldValue, newValue interface{}) error {
	return s.write(tx, userID, action, objectType, objectID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(tx *gorm.DB, userID *uuid.UUID, action, objectType, objectID string, oldValue interface{}) error {
	return s.write(tx, userID, action, objectType, objectID, oldValue, nil)
}
