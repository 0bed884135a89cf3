package repository

import (
	"errors"

	"clinic-data-store/internal/domain/entity"
	domainRepo "clinic-data-store/internal/domain/repository"
	"clinic-data-store/pkg/dberr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return dberr.Translate(db.Create(payment).Error)
}

func (r *paymentRepository) Update(db *gorm.DB, payment *entity.Payment) error {
	return dberr.Translate(db.Save(payment).Error)
}

// UpdateStatus sets the settlement status without touching the rest of the
// row. Returns affected rows: 0 means the payment does not exist.
func (r *paymentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.PaymentStatus) (int64, error) {
	result := db.Model(&entity.Payment{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, dberr.Translate(result.Error)
}

func (r *paymentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByTransactionRef(db *gorm.DB, ref string) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("transaction_ref = ?", ref).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}
