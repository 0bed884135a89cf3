package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription represents medication prescribed during an appointment.
// The doctor reference is RESTRICT on delete: prescriptions protect the
// prescribing doctor row as a historical record.
type Prescription struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"appointment_id" validate:"required"`
	DoctorID      uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id" validate:"required"`
	Medication    string    `gorm:"type:varchar(255);not null" json:"medication" validate:"required"`
	Dosage        string    `gorm:"type:varchar(100)" json:"dosage,omitempty"`
	Instructions  string    `gorm:"type:text" json:"instructions,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty" validate:"-"`
	Doctor      Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty" validate:"-"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
