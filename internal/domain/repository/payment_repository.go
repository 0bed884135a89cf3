package repository

import (
	"clinic-data-store/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	Update(db *gorm.DB, payment *entity.Payment) error
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.PaymentStatus) (int64, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Payment, error)
	FindByTransactionRef(db *gorm.DB, ref string) (*entity.Payment, error)
}
