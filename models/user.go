package models

import (
	"time"

	"gorm.io/gorm"
)

// Top-level role tags carried on the user record and inside the token.
// Fine-grained permissions only gate the "user" (staff) tier.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleUser       = "user"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:255" json:"fullName"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	Role     string `gorm:"size:20;not null;default:user" json:"role"`

	// Tenant scope. Null for superadmin and for admins before they create
	// their hotel; required for staff.
	HotelID *uint `gorm:"index" json:"hotelId,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func ValidTopLevelRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}
