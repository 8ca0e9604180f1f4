package database

import (
	"fmt"
	"log"
	"time"

	"clubhub/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedConfig holds configuration for seeding the database
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
	AdminName     string
}

// DefaultSeedConfig returns default seed configuration
func DefaultSeedConfig() *SeedConfig {
	return &SeedConfig{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		AdminName:     "Administrator",
	}
}

// Seed creates the default admin account plus a regular member for
// development. Existing accounts are left untouched.
func Seed(db *gorm.DB, cfg *SeedConfig) error {
	if cfg == nil {
		cfg = DefaultSeedConfig()
	}

	log.Println("Starting database seeding...")

	if err := seedAccount(db, cfg.AdminName, cfg.AdminUsername, cfg.AdminPassword, user.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}
	if err := seedAccount(db, "Member", "member", "member123", user.RoleUser); err != nil {
		return fmt.Errorf("seed member account: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func seedAccount(db *gorm.DB, name, username, password, role string) error {
	var count int64
	if err := db.Model(&user.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Account %q already exists, skipping", username)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := user.User{
		Name:         name,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&u).Error; err != nil {
		return err
	}

	log.Printf("Created account %q with role %s", username, role)
	return nil
}
