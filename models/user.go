package models

import (
	"strings"
	"time"
)

// Capability scopes for manager actions. Scopes are checked per action,
// not per endpoint group.
const (
	ScopeManageInAssemblyOnly = "manage_in_assembly_only"
	ScopeManageInDeliveryOnly = "manage_in_delivery_only"
)

// User represents an authenticated identity (client account or manager)
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	Email        string    `gorm:"size:254" json:"email"`
	FirstName    string    `gorm:"size:150" json:"first_name"`
	LastName     string    `gorm:"size:150" json:"last_name"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	Scopes       string    `gorm:"size:250" json:"-"` // space-separated capability scopes
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// HasScope reports whether the user holds a specific capability scope
func (u *User) HasScope(scope string) bool {
	return HasScope(u.Scopes, scope)
}

// IsManager reports whether the user holds any manager capability scope
func (u *User) IsManager() bool {
	return u.HasScope(ScopeManageInAssemblyOnly) || u.HasScope(ScopeManageInDeliveryOnly)
}

// HasScope reports whether a space-separated scope list contains a scope
func HasScope(scopes, expected string) bool {
	for _, s := range strings.Fields(scopes) {
		if s == expected {
			return true
		}
	}
	return false
}
