package services

import (
	"errors"
	"time"

	"github.com/reviewhub-api/apperrors"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/models"
	"github.com/reviewhub-api/permissions"
	"github.com/reviewhub-api/repositories"
	"github.com/reviewhub-api/utils"
	"gorm.io/gorm"
)

// ReviewService implements the rating engine: review lifecycle plus the
// one-review-per-author rule.
type ReviewService struct {
	reviewRepo *repositories.ReviewRepository
	titleRepo  *repositories.TitleRepository
}

// NewReviewService creates a new review service instance
func NewReviewService() *ReviewService {
	return &ReviewService{
		reviewRepo: repositories.NewReviewRepository(),
		titleRepo:  repositories.NewTitleRepository(),
	}
}

// ListReviews retrieves a title's reviews; open to anonymous requesters
func (s *ReviewService) ListReviews(titleID uint, filter dto.PageFilter) ([]dto.ReviewResponse, int64, error) {
	if err := s.requireTitle(titleID); err != nil {
		return nil, 0, err
	}

	reviews, totalCount, err := s.reviewRepo.FindByTitle(titleID, filter.Page, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = toReviewResponse(review)
	}
	return responses, totalCount, nil
}

// GetReview retrieves one review scoped to its title
func (s *ReviewService) GetReview(titleID, reviewID uint) (dto.ReviewResponse, error) {
	review, err := s.resolveReview(titleID, reviewID)
	if err != nil {
		return dto.ReviewResponse{}, err
	}
	return toReviewResponse(review), nil
}

// CreateReview creates the requester's review of a title. The second
// review for the same (title, author) pair fails whatever the requester's
// role; under concurrency the unique index makes the same guarantee.
func (s *ReviewService) CreateReview(requester *models.User, titleID uint, req dto.ReviewRequest) (dto.ReviewResponse, error) {
	if !permissions.CanCreateContent(requester) {
		return dto.ReviewResponse{}, apperrors.ErrAuthRequired
	}
	if err := s.requireTitle(titleID); err != nil {
		return dto.ReviewResponse{}, err
	}
	if err := utils.ValidateScore(req.Score); err != nil {
		return dto.ReviewResponse{}, err
	}

	exists, err := s.reviewRepo.ExistsForTitleAndAuthor(titleID, requester.ID)
	if err != nil {
		return dto.ReviewResponse{}, err
	}
	if exists {
		return dto.ReviewResponse{}, apperrors.ErrDuplicateReview
	}

	review, err := s.reviewRepo.Create(models.Review{
		TitleID:  titleID,
		AuthorID: requester.ID,
		Text:     req.Text,
		Score:    req.Score,
		PubDate:  time.Now(),
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return dto.ReviewResponse{}, apperrors.ErrDuplicateReview
	}
	if err != nil {
		return dto.ReviewResponse{}, err
	}

	review.Author = *requester
	return toReviewResponse(review), nil
}

// UpdateReview edits text and/or score. PubDate is set once at creation
// and never changes here.
func (s *ReviewService) UpdateReview(requester *models.User, titleID, reviewID uint, req dto.ReviewUpdateRequest) (dto.ReviewResponse, error) {
	review, err := s.resolveReview(titleID, reviewID)
	if err != nil {
		return dto.ReviewResponse{}, err
	}
	if err := s.requireEditAuthority(requester, review.AuthorID); err != nil {
		return dto.ReviewResponse{}, err
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		if err := utils.ValidateScore(*req.Score); err != nil {
			return dto.ReviewResponse{}, err
		}
		review.Score = *req.Score
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return dto.ReviewResponse{}, err
	}
	return toReviewResponse(review), nil
}

// DeleteReview removes a review and its comments
func (s *ReviewService) DeleteReview(requester *models.User, titleID, reviewID uint) error {
	review, err := s.resolveReview(titleID, reviewID)
	if err != nil {
		return err
	}
	if err := s.requireEditAuthority(requester, review.AuthorID); err != nil {
		return err
	}
	return s.reviewRepo.Delete(reviewID)
}

func (s *ReviewService) requireTitle(titleID uint) error {
	exists, err := s.titleRepo.Exists(titleID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFoundf("title %d", titleID)
	}
	return nil
}

func (s *ReviewService) resolveReview(titleID, reviewID uint) (models.Review, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return review, apperrors.NotFoundf("review %d", reviewID)
		}
		return review, err
	}
	if review.TitleID != titleID {
		return review, apperrors.NotFoundf("review %d for title %d", reviewID, titleID)
	}
	return review, nil
}

func (s *ReviewService) requireEditAuthority(requester *models.User, authorID uint) error {
	if requester == nil {
		return apperrors.ErrAuthRequired
	}
	if !permissions.CanEditContent(requester, authorID) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

func toReviewResponse(review models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:      review.ID,
		Text:    review.Text,
		Author:  review.Author.Username,
		Score:   review.Score,
		PubDate: review.PubDate,
	}
}
