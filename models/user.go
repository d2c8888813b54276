package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser            UserRole = "USER"
	RoleAdmin           UserRole = "ADMIN"
	RoleDriver          UserRole = "DRIVER"
	RoleRestaurantOwner UserRole = "RESTAURANT_OWNER"
)

// NormalizeRole maps any casing of a role string onto the canonical
// uppercase form. Unknown roles fall back to USER.
func NormalizeRole(role string) UserRole {
	switch UserRole(strings.ToUpper(role)) {
	case RoleAdmin:
		return RoleAdmin
	case RoleDriver:
		return RoleDriver
	case RoleRestaurantOwner:
		return RoleRestaurantOwner
	default:
		return RoleUser
	}
}

// AnonymousEmail is the reserved address of the sentinel user that
// receives article ownership when an account is deleted.
const AnonymousEmail = "anonymous@newshub.local"

type User struct {
	ID                   uint           `json:"id" gorm:"primarykey"`
	Name                 string         `json:"name" gorm:"not null"`
	Email                string         `json:"email" gorm:"uniqueIndex;not null"`
	Password             *string        `json:"-"` // nil for OAuth-only accounts
	Role                 UserRole       `json:"role" gorm:"default:'USER'"`
	IsVerified           bool           `json:"is_verified" gorm:"default:false"`
	VerificationToken    *string        `json:"-"`
	VerificationExpires  *time.Time     `json:"-"`
	PasswordResetToken   *string        `json:"-"`
	PasswordResetExpires *time.Time     `json:"-"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `json:"-" gorm:"index"`
}
