package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment.
// The value set is closed and case-sensitive; status transitions are the
// calling application's responsibility, the store only declares the set.
type AppointmentStatus string

const (
	AppointmentStatusRequested   AppointmentStatus = "REQUESTED"
	AppointmentStatusConfirmed   AppointmentStatus = "CONFIRMED"
	AppointmentStatusRescheduled AppointmentStatus = "RESCHEDULED"
	AppointmentStatusCompleted   AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled   AppointmentStatus = "CANCELLED"
	AppointmentStatusNoShow      AppointmentStatus = "NO_SHOW"
)

// AppointmentStatusValues returns the closed value set in declaration order.
func AppointmentStatusValues() []AppointmentStatus {
	return []AppointmentStatus{
		AppointmentStatusRequested,
		AppointmentStatusConfirmed,
		AppointmentStatusRescheduled,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	}
}

// IsValid reports whether s is a member of the closed value set.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusRequested, AppointmentStatusConfirmed,
		AppointmentStatusRescheduled, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Appointment represents a scheduled visit between a patient and a doctor.
//
// Overlapping appointments for the same doctor are accepted by the store.
// The composite index on (doctor_id, scheduled_start, scheduled_end) only
// accelerates an external overlap check; full overlap prevention requires
// transaction + checks in the application layer.
type Appointment struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id" validate:"required"`
	DoctorID       uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_doctor_time,priority:1" json:"doctor_id" validate:"required"`
	ClinicID       *uuid.UUID        `gorm:"type:uuid;index" json:"clinic_id,omitempty"`
	ScheduledStart time.Time         `gorm:"type:timestamptz;not null;index:idx_appointments_doctor_time,priority:2" json:"scheduled_start" validate:"required"`
	ScheduledEnd   time.Time         `gorm:"type:timestamptz;not null;index:idx_appointments_doctor_time,priority:3" json:"scheduled_end" validate:"required,gtfield=ScheduledStart"`
	Status         AppointmentStatus `gorm:"type:appointment_status;not null;default:'REQUESTED';index" json:"status"`
	Reason         string            `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient       Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty" validate:"-"`
	Doctor        Doctor         `gorm:"foreignKey:DoctorID" json:"doctor,omitempty" validate:"-"`
	Clinic        *Clinic        `gorm:"foreignKey:ClinicID" json:"clinic,omitempty" validate:"-"`
	Prescriptions []Prescription `gorm:"foreignKey:AppointmentID" json:"prescriptions,omitempty" validate:"-"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsTerminal reports whether the appointment is in a final status.
func (a *Appointment) IsTerminal() bool {
	switch a.Status {
	case AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Overlaps reports whether two appointments share any of the same time range.
// Helper for external overlap checks; the store itself never rejects overlaps.
func (a *Appointment) Overlaps(other *Appointment) bool {
	return a.ScheduledStart.Before(other.ScheduledEnd) && other.ScheduledStart.Before(a.ScheduledEnd)
}
