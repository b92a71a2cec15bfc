package models

import (
	"time"
)

// Role defines the user role type
type Role string

const (
	RoleHR      Role = "hr"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// ValidRole reports whether the given role is one of the known roles
func ValidRole(role string) bool {
	switch Role(role) {
	case RoleHR, RoleManager, RoleStaff:
		return true
	}
	return false
}

// User defines the user model based on the 'users' table
type User struct {
	ID           int64      `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"` // excluded from JSON
	Role         Role       `json:"role" db:"role"`
	PositionID   *int64     `json:"positionId,omitempty" db:"position_id"`
	LastLogin    *time.Time `json:"lastLogin,omitempty" db:"last_login"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`

	Position *Position `json:"position,omitempty"` // relation, no db tag
}
