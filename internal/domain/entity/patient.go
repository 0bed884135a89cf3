package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents patient-specific profile data, keyed 1:1 on the user
type Patient struct {
	UserID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	MedicalRecordNumber   string     `gorm:"column:medical_record_number;type:varchar(50);uniqueIndex;not null" json:"medical_record_number" validate:"required"`
	DateOfBirth           *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	EmergencyContactName  string     `gorm:"type:varchar(255)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`

	// Relationships
	User           User            `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	Appointments   []Appointment   `gorm:"foreignKey:PatientID" json:"appointments,omitempty" validate:"-"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID" json:"medical_records,omitempty" validate:"-"`
	Payments       []Payment       `gorm:"foreignKey:PatientID" json:"payments,omitempty" validate:"-"`
}

func (Patient) TableName() string {
	return "patients"
}
