package database

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/latoulicious/meeple/pkg/database/models"
)

// NewGormDB creates a new GORM database connection using the provided DSN
// and migrates the catalog cache tables.
func NewGormDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Game{}, &models.GameRank{}); err != nil {
		return nil, err
	}

	return db, nil
}

// NewGormDBWithoutMigration connects without touching the schema. Used by
// the migration runner when it needs to reset tables first.
func NewGormDBWithoutMigration(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is not set")
	}
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
