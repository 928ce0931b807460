// Package permissions holds the authorization predicates. Each is a pure
// function of the requester (nil for anonymous) and, where relevant, the
// owner of the target object. Handlers and services call these instead of
// inspecting roles directly.
package permissions

import (
	"github.com/reviewhub-api/models"
)

// CanWriteCatalog gates mutations of categories, genres and titles. Reads
// are open to everyone, including anonymous requesters.
func CanWriteCatalog(u *models.User) bool {
	return u != nil && u.HasAdminAuthority()
}

// CanCreateContent gates creation of reviews and comments: any
// authenticated user.
func CanCreateContent(u *models.User) bool {
	return u != nil
}

// CanEditContent gates update/delete of a review or comment: the author, or
// anyone with moderation authority.
func CanEditContent(u *models.User, authorID uint) bool {
	if u == nil {
		return false
	}
	return u.ID == authorID || u.HasModerationAuthority()
}

// CanManageUsers gates the user-management endpoints (everything under
// /users except /users/me).
func CanManageUsers(u *models.User) bool {
	return u != nil && u.HasAdminAuthority()
}

// CanSetRole reports whether the requester may change a role field,
// including on their own record.
func CanSetRole(u *models.User) bool {
	return u != nil && (!u.IsRegular() || u.IsSuperuser)
}
