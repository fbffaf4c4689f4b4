package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jobtrail/jobtrail/internal/config"
	"github.com/jobtrail/jobtrail/internal/models"
)

// Connect opens Postgres and runs migrations. The schema is small enough
// that AutoMigrate is all the migration tooling we carry.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Application{},
		&models.ApplicationEvent{},
		&models.Reminder{},
		&models.Preference{},
		&models.PasswordResetToken{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
