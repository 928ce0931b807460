package services

import (
	"errors"
	"math"

	"github.com/reviewhub-api/apperrors"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/models"
	"github.com/reviewhub-api/permissions"
	"github.com/reviewhub-api/repositories"
	"github.com/reviewhub-api/utils"
	"gorm.io/gorm"
)

// TitleService implements the title operations, including assembly of the
// read shape with the derived rating.
type TitleService struct {
	titleRepo  *repositories.TitleRepository
	reviewRepo *repositories.ReviewRepository
}

// NewTitleService creates a new title service instance
func NewTitleService() *TitleService {
	return &TitleService{
		titleRepo:  repositories.NewTitleRepository(),
		reviewRepo: repositories.NewReviewRepository(),
	}
}

// ListTitles retrieves titles matching the AND-combined filters, with
// ratings from one grouped aggregation over the current review set.
func (s *TitleService) ListTitles(filter dto.TitleFilter) ([]dto.TitleResponse, int64, error) {
	titles, totalCount, err := s.titleRepo.FindWithFilters(filter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, len(titles))
	for i, t := range titles {
		ids[i] = t.ID
	}
	averages, err := s.reviewRepo.AverageScores(ids)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.TitleResponse, len(titles))
	for i, t := range titles {
		var avg *float64
		if v, ok := averages[t.ID]; ok {
			avg = &v
		}
		responses[i] = toTitleResponse(t, avg)
	}
	return responses, totalCount, nil
}

// GetTitle retrieves one title with its rating computed at read time
func (s *TitleService) GetTitle(id uint) (dto.TitleResponse, error) {
	title, err := s.titleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TitleResponse{}, apperrors.NotFoundf("title %d", id)
		}
		return dto.TitleResponse{}, err
	}

	avg, err := s.reviewRepo.AverageScore(id)
	if err != nil {
		return dto.TitleResponse{}, err
	}
	return toTitleResponse(title, avg), nil
}

// CreateTitle creates a title from slug-addressed category and genres;
// requires admin authority.
func (s *TitleService) CreateTitle(requester *models.User, req dto.TitleRequest) (dto.TitleResponse, error) {
	if !permissions.CanWriteCatalog(requester) {
		return dto.TitleResponse{}, apperrors.ErrPermissionDenied
	}
	if err := utils.ValidateYear(*req.Year); err != nil {
		return dto.TitleResponse{}, err
	}

	category, err := s.resolveCategory(req.Category)
	if err != nil {
		return dto.TitleResponse{}, err
	}
	genres, err := s.resolveGenres(req.Genre)
	if err != nil {
		return dto.TitleResponse{}, err
	}

	title, err := s.titleRepo.Create(models.Title{
		Name:        req.Name,
		Year:        *req.Year,
		Description: req.Description,
		CategoryID:  category.ID,
		Category:    category,
		Genres:      genres,
	})
	if err != nil {
		return dto.TitleResponse{}, err
	}
	return toTitleResponse(title, nil), nil
}

// UpdateTitle applies a partial update; a submitted genre list replaces
// the stored set wholesale.
func (s *TitleService) UpdateTitle(requester *models.User, id uint, req dto.TitleUpdateRequest) (dto.TitleResponse, error) {
	if !permissions.CanWriteCatalog(requester) {
		return dto.TitleResponse{}, apperrors.ErrPermissionDenied
	}

	title, err := s.titleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TitleResponse{}, apperrors.NotFoundf("title %d", id)
		}
		return dto.TitleResponse{}, err
	}

	if req.Name != nil {
		title.Name = *req.Name
	}
	if req.Year != nil {
		if err := utils.ValidateYear(*req.Year); err != nil {
			return dto.TitleResponse{}, err
		}
		title.Year = *req.Year
	}
	if req.Description != nil {
		title.Description = *req.Description
	}
	if req.Category != nil {
		category, err := s.resolveCategory(*req.Category)
		if err != nil {
			return dto.TitleResponse{}, err
		}
		title.CategoryID = category.ID
		title.Category = category
	}

	// Resolve the genre set before touching the row so an unknown slug
	// rejects the whole update, not just the genre part
	var genres []models.Genre
	if req.Genre != nil {
		genres, err = s.resolveGenres(*req.Genre)
		if err != nil {
			return dto.TitleResponse{}, err
		}
	}

	if err := s.titleRepo.Update(&title, genres, req.Genre != nil); err != nil {
		return dto.TitleResponse{}, err
	}
	if req.Genre != nil {
		title.Genres = genres
	}

	avg, err := s.reviewRepo.AverageScore(id)
	if err != nil {
		return dto.TitleResponse{}, err
	}
	return toTitleResponse(title, avg), nil
}

// DeleteTitle removes a title; its reviews and their comments go with it
func (s *TitleService) DeleteTitle(requester *models.User, id uint) error {
	if !permissions.CanWriteCatalog(requester) {
		return apperrors.ErrPermissionDenied
	}

	exists, err := s.titleRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFoundf("title %d", id)
	}
	return s.titleRepo.Delete(id)
}

func (s *TitleService) resolveCategory(slug string) (models.Category, error) {
	category, err := repositories.NewCategoryRepository().FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return category, apperrors.Validationf("unknown category slug %q", slug)
	}
	return category, err
}

func (s *TitleService) resolveGenres(slugs []string) ([]models.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	genres, err := repositories.NewGenreRepository().FindBySlugs(slugs)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(uniqueStrings(slugs)) {
		return nil, apperrors.Validationf("unknown genre slug in %v", slugs)
	}
	return genres, nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0:0]
	for _, v := range values {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// toTitleResponse renders the expanded read shape. The mean is rounded
// half-away-from-zero to an integer; nil stays nil.
func toTitleResponse(title models.Title, avg *float64) dto.TitleResponse {
	var rating *int
	if avg != nil {
		rounded := int(math.Round(*avg))
		rating = &rounded
	}
	genres := title.Genres
	if genres == nil {
		genres = []models.Genre{}
	}
	return dto.TitleResponse{
		ID:          title.ID,
		Name:        title.Name,
		Year:        title.Year,
		Rating:      rating,
		Description: title.Description,
		Genre:       genres,
		Category:    title.Category,
	}
}
