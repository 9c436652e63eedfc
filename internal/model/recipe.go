package model

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"
)

const MinInstructionsLength = 50

var ErrInstructionsTooShort = errors.New("instructions must be at least 50 characters long")

type Recipe struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	Instructions      string    `gorm:"type:text;not null" json:"instructions"`
	MinutesToComplete int       `gorm:"not null" json:"minutes_to_complete"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (r *Recipe) Validate() error {
	if utf8.RuneCountInString(r.Instructions) < MinInstructionsLength {
		return ErrInstructionsTooShort
	}
	return nil
}

// BeforeSave runs on create and on every update that goes through the model.
func (r *Recipe) BeforeSave(tx *gorm.DB) error {
	return r.Validate()
}
