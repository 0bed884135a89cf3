package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name" validate:"required"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty" validate:"-"`
}

func (Role) TableName() string {
	return "roles"
}

// Role name constants
const (
	RoleAdmin        = "Admin"
	RoleDoctor       = "Doctor"
	RolePatient      = "Patient"
	RoleReceptionist = "Receptionist"
	RoleNurse        = "Nurse"
)

// SeededRoleNames returns the role rows that must exist after initialization,
// in seed order.
func SeededRoleNames() []string {
	return []string{RoleAdmin, RoleDoctor, RolePatient, RoleReceptionist, RoleNurse}
}
