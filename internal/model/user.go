package model

import "time"

type User struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"size:64;not null;uniqueIndex" json:"username"`
	PasswordHash PasswordHash `gorm:"column:password_hash;type:varchar(255);not null;serializer:password_hash" json:"-"`
	ImageURL     string       `gorm:"size:512;not null;default:''" json:"image_url"`
	Bio          string       `gorm:"type:text" json:"bio"`
	Recipes      []Recipe     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (u *User) SetPassword(plain string) error {
	hash, err := HashPassword(plain)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) Authenticate(plain string) bool {
	return u.PasswordHash.Verify(plain)
}
