package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodMpesa    PaymentMethod = "M-PESA"
	PaymentMethodIntaSend PaymentMethod = "INTASEND"
	PaymentMethodOther    PaymentMethod = "OTHER"
)

// IsValid reports whether m is a member of the closed value set.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMpesa,
		PaymentMethodIntaSend, PaymentMethodOther:
		return true
	}
	return false
}

// PaymentStatus represents the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// IsValid reports whether s is a member of the closed value set.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted,
		PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// DefaultCurrency is the three-letter code applied when no currency is given.
const DefaultCurrency = "KES"

// Payment represents a patient payment. The appointment reference is
// optional; deleting the appointment nullifies it, while the patient
// reference is RESTRICT to protect financial history.
type Payment struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id" validate:"required"`
	AppointmentID  *uuid.UUID      `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	Amount         decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount" validate:"dgte=0"`
	Currency       string          `gorm:"type:char(3);not null;default:'KES'" json:"currency" validate:"omitempty,len=3"`
	Method         PaymentMethod   `gorm:"type:payment_method;not null;default:'INTASEND'" json:"method"`
	Status         PaymentStatus   `gorm:"type:payment_status;not null;default:'PENDING';index" json:"status"`
	TransactionRef *string         `gorm:"type:varchar(100);uniqueIndex" json:"transaction_ref,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty" validate:"-"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty" validate:"-"`
}

func (Payment) TableName() string {
	return "payments"
}
