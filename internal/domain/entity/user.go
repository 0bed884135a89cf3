package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized account table. Doctor and Patient rows
// hang off it 1:1; deleting a user cascades to both.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID       int       `gorm:"not null;index" json:"role_id" validate:"required"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-" validate:"required"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name" validate:"required"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	IsActive     *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role    Role     `gorm:"foreignKey:RoleID" json:"role,omitempty" validate:"-"`
	Doctor  *Doctor  `gorm:"foreignKey:UserID" json:"doctor,omitempty" validate:"-"`
	Patient *Patient `gorm:"foreignKey:UserID" json:"patient,omitempty" validate:"-"`
}

func (User) TableName() string {
	return "users"
}
