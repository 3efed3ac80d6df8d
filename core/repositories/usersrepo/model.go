package usersrepo

import (
	"time"

	"github.com/jrazmi/artisan/sdk/validation"
)

// User is an application account.
type User struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"size:255;not null" json:"name" validate:"required,max=255"`
	Email           string     `gorm:"size:255;not null;uniqueIndex" json:"email" validate:"required,email,max=255"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	Password        string     `gorm:"size:255;not null" json:"-" validate:"required"`
	RememberToken   *string    `gorm:"size:100" json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName binds User to the users table.
func (User) TableName() string {
	return "users"
}

// Fillable lists the columns open to mass assignment.
func (User) Fillable() []string {
	return []string{"name", "email", "password"}
}

// Validate checks the record before it is written.
func (u User) Validate() error {
	return validation.Struct(u)
}
