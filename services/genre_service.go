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

// GenreService implements the genre operations
type GenreService struct {
	genreRepo *repositories.GenreRepository
}

// NewGenreService creates a new genre service instance
func NewGenreService() *GenreService {
	return &GenreService{
		genreRepo: repositories.NewGenreRepository(),
	}
}

// ListGenres retrieves genres; open to anonymous requesters
func (s *GenreService) ListGenres(search string, filter dto.PageFilter) ([]models.Genre, int64, error) {
	return s.genreRepo.FindWithPagination(search, filter.Page, filter.PageSize)
}

// GetGenre retrieves one genre by slug
func (s *GenreService) GetGenre(slug string) (models.Genre, error) {
	genre, err := s.genreRepo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return genre, apperrors.NotFoundf("genre %q", slug)
	}
	return genre, err
}

// CreateGenre creates a genre; requires admin authority
func (s *GenreService) CreateGenre(requester *models.User, req dto.SlugRequest) (models.Genre, error) {
	if !permissions.CanWriteCatalog(requester) {
		return models.Genre{}, apperrors.ErrPermissionDenied
	}
	if err := utils.ValidateSlug(req.Slug); err != nil {
		return models.Genre{}, err
	}

	genre, err := s.genreRepo.Create(models.Genre{Name: req.Name, Slug: req.Slug})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Genre{}, apperrors.Validationf("genre slug %q already exists", req.Slug)
	}
	return genre, err
}

// DeleteGenre removes a genre by slug. Titles tagged with it survive; only
// the associations go.
func (s *GenreService) DeleteGenre(requester *models.User, slug string) error {
	if !permissions.CanWriteCatalog(requester) {
		return apperrors.ErrPermissionDenied
	}

	genre, err := s.genreRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("genre %q", slug)
		}
		return err
	}

	return s.genreRepo.Delete(genre)
}
