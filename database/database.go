package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Samuel-pydev/Spill-Zone-bck/models"
)

// Connect opens the database connection. TranslateError is enabled so
// uniqueness violations surface as gorm.ErrDuplicatedKey.
func Connect(url string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate runs migrations for all entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Message{},
		&models.Reaction{},
	)
}
