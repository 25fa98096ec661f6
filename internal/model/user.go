package model

import "time"

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleSubcontractor Role = "subcontractor"
	RoleClient        Role = "client"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSubcontractor, RoleClient:
		return true
	}
	return false
}

// User represents a registered account. Users are never hard-deleted;
// deactivation flips IsActive instead.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName     string    `json:"full_name" gorm:"size:255"`
	Role         Role      `json:"role" gorm:"size:50;default:'client'"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
