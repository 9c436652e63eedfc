package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"recipebox/internal/model"
)

var ErrDuplicateKey = errors.New("duplicate key")

// isUniqueViolation covers dialects that translate errors and the raw
// messages MySQL and SQLite return when translation is off.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Error 1062") || strings.Contains(msg, "UNIQUE constraint failed")
}

// AutoMigrate creates or updates every table the service owns.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.User{}, &model.Recipe{}, &model.Activity{}); err != nil {
		return fmt.Errorf("auto migrate tables failed: %w", err)
	}
	return nil
}
