package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ValidRole reports whether s is one of the closed role set.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account. The superuser flag is a separate
// authority tier, orthogonal to Role.
type User struct {
	ID               uint      `json:"-" gorm:"primaryKey"`
	Username         string    `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	FirstName        string    `json:"first_name" gorm:"size:150"`
	LastName         string    `json:"last_name" gorm:"size:150"`
	Bio              string    `json:"bio"`
	Role             Role      `json:"role" gorm:"type:varchar(10);default:'user'"`
	IsSuperuser      bool      `json:"-" gorm:"default:false"`
	ConfirmationCode string    `json:"-"` // bcrypt hash, never the plaintext code
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// IsAdmin reports whether the role field is admin.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsModerator reports whether the role field is moderator.
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}

// IsRegular reports whether the role field is plain user.
func (u *User) IsRegular() bool {
	return u.Role == RoleUser
}

// HasAdminAuthority is true for the admin role and for superusers regardless
// of role.
func (u *User) HasAdminAuthority() bool {
	return u.IsAdmin() || u.IsSuperuser
}

// HasModerationAuthority is true for moderators and anyone with admin
// authority.
func (u *User) HasModerationAuthority() bool {
	return u.IsModerator() || u.HasAdminAuthority()
}
