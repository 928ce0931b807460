package services

import (
	"errors"

	"github.com/reviewhub-api/apperrors"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/models"
	"github.com/reviewhub-api/permissions"
	"github.com/reviewhub-api/repositories"
	"github.com/reviewhub-api/utils"
	"gorm.io/gorm"
)

// UserService implements the user-management operations. Admin gating for
// the collection endpoints happens in middleware; the self-profile role
// lock lives here because it is a write-path rule, not a routing rule.
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
	}
}

// ListUsers retrieves users for the admin list view
func (s *UserService) ListUsers(filter dto.UserFilter) ([]models.User, int64, error) {
	return s.userRepo.FindWithPagination(filter.Search, filter.Page, filter.PageSize)
}

// GetByUsername retrieves a single user for the admin detail view
func (s *UserService) GetByUsername(username string) (models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, apperrors.NotFoundf("user %q", username)
	}
	return user, err
}

// CreateUser creates a user on behalf of an admin, any role allowed
func (s *UserService) CreateUser(req dto.CreateUserRequest) (models.User, error) {
	if err := utils.ValidateUsername(req.Username); err != nil {
		return models.User{}, err
	}
	role := models.RoleUser
	if req.Role != "" {
		if !models.ValidRole(req.Role) {
			return models.User{}, apperrors.Validationf("unknown role %q", req.Role)
		}
		role = models.Role(req.Role)
	}

	user, err := s.userRepo.Create(models.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      role,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.User{}, apperrors.Validationf("username or email already in use")
	}
	return user, err
}

// UpdateUser applies an admin-initiated partial update, role included
func (s *UserService) UpdateUser(username string, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.GetByUsername(username)
	if err != nil {
		return user, err
	}

	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return user, apperrors.Validationf("unknown role %q", *req.Role)
		}
		user.Role = models.Role(*req.Role)
	}
	return s.applyProfileFields(user, req)
}

// UpdateSelf applies a self-profile update. Submitted role values are
// discarded for regular non-superuser requesters rather than rejected.
func (s *UserService) UpdateSelf(requester models.User, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.userRepo.FindByID(requester.ID)
	if err != nil {
		return user, err
	}

	if req.Role != nil && permissions.CanSetRole(&requester) {
		if !models.ValidRole(*req.Role) {
			return user, apperrors.Validationf("unknown role %q", *req.Role)
		}
		user.Role = models.Role(*req.Role)
	}
	return s.applyProfileFields(user, req)
}

// DeleteUser removes a user by username
func (s *UserService) DeleteUser(username string) error {
	if _, err := s.GetByUsername(username); err != nil {
		return err
	}
	return s.userRepo.Delete(username)
}

func (s *UserService) applyProfileFields(user models.User, req dto.UpdateUserRequest) (models.User, error) {
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	err := s.userRepo.Update(user)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return user, apperrors.Validationf("email already in use")
	}
	return user, err
}
