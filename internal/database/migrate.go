package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/devhive/backend/internal/models"
)

// Migrate brings the schema up to date at startup
func Migrate(db *gorm.DB) error {
	log.Printf("Running schema migrations")
	return db.AutoMigrate(
		&models.Dev{},
	)
}
