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

// CategoryService implements the category operations
type CategoryService struct {
	categoryRepo *repositories.CategoryRepository
}

// NewCategoryService creates a new category service instance
func NewCategoryService() *CategoryService {
	return &CategoryService{
		categoryRepo: repositories.NewCategoryRepository(),
	}
}

// ListCategories retrieves categories; open to anonymous requesters
func (s *CategoryService) ListCategories(search string, filter dto.PageFilter) ([]models.Category, int64, error) {
	return s.categoryRepo.FindWithPagination(search, filter.Page, filter.PageSize)
}

// GetCategory retrieves one category by slug
func (s *CategoryService) GetCategory(slug string) (models.Category, error) {
	category, err := s.categoryRepo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return category, apperrors.NotFoundf("category %q", slug)
	}
	return category, err
}

// CreateCategory creates a category; requires admin authority
func (s *CategoryService) CreateCategory(requester *models.User, req dto.SlugRequest) (models.Category, error) {
	if !permissions.CanWriteCatalog(requester) {
		return models.Category{}, apperrors.ErrPermissionDenied
	}
	if err := utils.ValidateSlug(req.Slug); err != nil {
		return models.Category{}, err
	}

	category, err := s.categoryRepo.Create(models.Category{Name: req.Name, Slug: req.Slug})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Category{}, apperrors.Validationf("category slug %q already exists", req.Slug)
	}
	return category, err
}

// DeleteCategory removes a category by slug. A category still referenced
// by titles cannot be deleted: Title requires exactly one category, so
// nullifying is not an option.
func (s *CategoryService) DeleteCategory(requester *models.User, slug string) error {
	if !permissions.CanWriteCatalog(requester) {
		return apperrors.ErrPermissionDenied
	}

	category, err := s.categoryRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("category %q", slug)
		}
		return err
	}

	count, err := s.categoryRepo.CountTitles(category.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Validationf("category %q is referenced by %d titles", slug, count)
	}

	return s.categoryRepo.Delete(slug)
}
