package models

import "time"

// User is an account row. Profile fields live on the same row; the email
// is normalized to lower case before it reaches the store, and the unique
// index makes it the external identity.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:50;not null" json:"name"`
	Email        string `gorm:"size:180;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	DisplayName string `gorm:"size:50" json:"display_name"`
	DateOfBirth string `gorm:"size:20" json:"date_of_birth"`
	PhotoURL    string `json:"photo_url"`

	ResetPasswordToken   string     `gorm:"size:64;index" json:"-"`
	ResetPasswordExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
