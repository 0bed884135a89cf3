package database

import (
	"fmt"

	"clinic-data-store/config"
	"clinic-data-store/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var roleDescriptions = map[string]string{
	entity.RoleAdmin:        "Full administrative access",
	entity.RoleDoctor:       "Practicing clinician",
	entity.RolePatient:      "Registered patient",
	entity.RoleReceptionist: "Front desk scheduling staff",
	entity.RoleNurse:        "Nursing staff",
}

// SeedRoles makes sure the five fixed role rows exist. Idempotent: rows
// already present are left untouched.
func SeedRoles(db *gorm.DB) error {
	for _, name := range entity.SeededRoleNames() {
		role := entity.Role{Name: name, Description: roleDescriptions[name]}
		err := db.Where(entity.Role{Name: name}).FirstOrCreate(&role).Error
		if err != nil {
			return fmt.Errorf("failed to seed role %q: %w", name, err)
		}
	}

	logrus.Infof("Seeded %d roles", len(entity.SeededRoleNames()))
	return nil
}

// SeedAdminUser provisions a bootstrap Admin account when credentials are
// configured. A no-op when ADMIN_EMAIL or ADMIN_PASSWORD is empty or the
// account already exists.
func SeedAdminUser(db *gorm.DB, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}

	var adminRole entity.Role
	if err := db.Where("name = ?", entity.RoleAdmin).First(&adminRole).Error; err != nil {
		return fmt.Errorf("admin role not found, seed roles first: %w", err)
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", cfg.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for existing admin user: %w", err)
	}
	if count > 0 {
		logrus.Infof("Admin user %s already exists, skipping", cfg.Email)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := entity.User{
		RoleID:       adminRole.ID,
		Email:        cfg.Email,
		PasswordHash: string(hashedPassword),
		FullName:     cfg.FullName,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logrus.Infof("Admin user %s created", cfg.Email)
	return nil
}
