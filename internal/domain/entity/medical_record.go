package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord represents a clinical note on a patient's history. Doctor
// and appointment references are optional and survive their deletion as NULL.
type MedicalRecord struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id" validate:"required"`
	DoctorID      *uuid.UUID `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	Summary       string     `gorm:"type:varchar(255);not null" json:"summary" validate:"required"`
	Details       string     `gorm:"type:text" json:"details,omitempty"`
	RecordDate    time.Time  `gorm:"type:date;not null" json:"record_date" validate:"required"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty" validate:"-"`
	Doctor      *Doctor      `gorm:"foreignKey:DoctorID" json:"doctor,omitempty" validate:"-"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty" validate:"-"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
