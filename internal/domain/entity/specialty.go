package entity

// Specialty represents a medical specialty a doctor can hold
type Specialty struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Doctors []Doctor `gorm:"many2many:doctor_specialties" json:"doctors,omitempty" validate:"-"`
}

func (Specialty) TableName() string {
	return "specialties"
}
