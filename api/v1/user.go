package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reviewhub-api/apperrors"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/middleware"
	"github.com/reviewhub-api/permissions"
	"github.com/reviewhub-api/services"
)

var userService = services.NewUserService()

// ListUsers returns the admin user list with an exact-username search
func ListUsers(c *gin.Context) {
	page := pageFilter(c)
	users, totalCount, err := userService.ListUsers(dto.UserFilter{
		Search:   c.Query("search"),
		Page:     page.Page,
		PageSize: page.PageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(users, totalCount, page))
}

// CreateUser creates a user on behalf of an admin, any role allowed
func CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := userService.CreateUser(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": user})
}

// GetUser returns one user by username; "me" is the requester's own
// profile and needs no admin authority.
func GetUser(c *gin.Context) {
	username := c.Param("username")
	if username == "me" {
		GetSelf(c)
		return
	}
	if !permissions.CanManageUsers(middleware.CurrentUser(c)) {
		respondError(c, apperrors.ErrPermissionDenied)
		return
	}

	user, err := userService.GetByUsername(username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

// UpdateUser applies a partial update. For "me" the self-profile rules
// apply; any other target needs admin authority and may change role.
func UpdateUser(c *gin.Context) {
	username := c.Param("username")
	if username == "me" {
		UpdateSelf(c)
		return
	}
	if !permissions.CanManageUsers(middleware.CurrentUser(c)) {
		respondError(c, apperrors.ErrPermissionDenied)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := userService.UpdateUser(username, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

// DeleteUser removes a user by username
func DeleteUser(c *gin.Context) {
	if err := userService.DeleteUser(c.Param("username")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSelf returns the requester's own profile
func GetSelf(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}

// UpdateSelf applies a self-profile update; role changes are silently
// dropped for regular users.
func UpdateSelf(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := userService.UpdateSelf(*middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user})
}
