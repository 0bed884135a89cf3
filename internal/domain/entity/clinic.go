package entity

import (
	"time"

	"github.com/google/uuid"
)

// Clinic represents a physical clinic location
type Clinic struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Address      string    `gorm:"type:text" json:"address,omitempty"`
	ContactPhone string    `gorm:"type:varchar(20)" json:"contact_phone,omitempty"`
	ContactEmail string    `gorm:"type:varchar(255)" json:"contact_email,omitempty" validate:"omitempty,email"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors []Doctor `gorm:"many2many:doctor_clinics" json:"doctors,omitempty" validate:"-"`
}

func (Clinic) TableName() string {
	return "clinics"
}
