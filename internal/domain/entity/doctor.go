package entity

import "github.com/google/uuid"

// Doctor represents doctor-specific profile data, keyed 1:1 on the user
type Doctor struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber   string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number" validate:"required"`
	YearsExperience int       `gorm:"not null;default:0" json:"years_experience" validate:"gte=0"`
	Biography       string    `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User           User                 `gorm:"foreignKey:UserID" json:"user,omitempty" validate:"-"`
	Specialties    []Specialty          `gorm:"many2many:doctor_specialties" json:"specialties,omitempty" validate:"-"`
	Clinics        []Clinic             `gorm:"many2many:doctor_clinics" json:"clinics,omitempty" validate:"-"`
	Availabilities []DoctorAvailability `gorm:"foreignKey:DoctorID" json:"availabilities,omitempty" validate:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}
