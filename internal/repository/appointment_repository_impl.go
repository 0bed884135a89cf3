package repository

import (
	"errors"
	"time"

	"clinic-data-store/internal/domain/entity"
	domainRepo "clinic-data-store/internal/domain/repository"
	"clinic-data-store/pkg/dberr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return dberr.Translate(db.Create(appointment).Error)
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return dberr.Translate(db.Save(appointment).Error)
}

// UpdateStatus sets the status without touching the rest of the row.
// Returns affected rows: 0 means the appointment does not exist.
func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, dberr.Translate(result.Error)
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, dberr.Translate(result.Error)
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor.User").Preload("Patient.User").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("scheduled_start DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").
		Where("doctor_id = ?", doctorID).
		Order("scheduled_start DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindOverlapping hits idx_appointments_doctor_time. Cancelled and no-show
// appointments do not block a slot.
func (r *appointmentRepository) FindOverlapping(db *gorm.DB, doctorID uuid.UUID, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND scheduled_start < ? AND scheduled_end > ?", doctorID, end, start).
		Where("status NOT IN ?", []entity.AppointmentStatus{
			entity.AppointmentStatusCancelled,
			entity.AppointmentStatusNoShow,
		}).
		Order("scheduled_start").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
