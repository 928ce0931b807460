package dto

// CreateUserRequest is the admin user-creation payload. Role defaults to
// regular user when omitted.
type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

// UpdateUserRequest is a partial update: nil fields are left untouched.
// Role is honored only when the policy layer allows the requester to set it.
type UpdateUserRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
}

// UserFilter narrows and pages the admin user list
type UserFilter struct {
	Search   string
	Page     int
	PageSize int
}
