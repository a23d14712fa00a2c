package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles are a fixed enumeration attached to the user record and validated
// at assignment time.
const (
	RolePrincipal   = "Principal"
	RoleCoordinator = "Coordinator"
	RoleStorekeeper = "Storekeeper"
	RoleTeacher     = "Teacher"
)

func ValidRole(role string) bool {
	switch role {
	case RolePrincipal, RoleCoordinator, RoleStorekeeper, RoleTeacher:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Username    string       `json:"username" gorm:"unique"`
	Password    string       `json:"-"`
	Name        string       `json:"name"`
	Email       string       `json:"email" gorm:"unique"`
	Role        string       `json:"role" gorm:"default:'Teacher'"`
	Permissions []Permission `json:"permissions,omitempty" gorm:"many2many:user_permissions;"`
	CreatedBy   int          `json:"-"`
	UpdatedBy   int          `json:"-"`
	DeletedBy   int          `json:"-"`
}

// Permission is a named capability gating a restricted workflow.
type Permission struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique"`
	Description string `json:"description"`
}

type UserSession struct {
	gorm.Model
	UserID         uint      `json:"user_id"`
	SessionID      string    `json:"session_id" gorm:"unique"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	IsActive       bool      `json:"is_active"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type LoginLog struct {
	gorm.Model
	UserID        *uint      `json:"user_id"`
	SessionID     string     `json:"session_id"`
	Username      string     `json:"username"`
	LoginAt       *time.Time `json:"login_at"`
	LogoutAt      *time.Time `json:"logout_at"`
	IPAddress     string     `json:"ip_address"`
	UserAgent     string     `json:"user_agent"`
	LoginStatus   string     `json:"login_status"` // SUCCESS / FAILED
	FailureReason *string    `json:"failure_reason"`
}
