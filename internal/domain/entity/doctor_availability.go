package entity

import (
	"time"

	"github.com/google/uuid"
)

// DoctorAvailability represents a weekly recurring availability window.
// DayOfWeek runs 0 (Sunday) through 6 (Saturday); the schema enforces the
// range and start < end with check constraints.
type DoctorAvailability struct {
	ID        int        `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"doctor_id" validate:"required"`
	ClinicID  *uuid.UUID `gorm:"type:uuid;index" json:"clinic_id,omitempty"`
	DayOfWeek int        `gorm:"type:smallint;not null" json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime string     `gorm:"type:time;not null" json:"start_time" validate:"required"`
	EndTime   string     `gorm:"type:time;not null" json:"end_time" validate:"required,timegtfield=StartTime"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty" validate:"-"`
	Clinic *Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty" validate:"-"`
}

func (DoctorAvailability) TableName() string {
	return "doctor_availabilities"
}
