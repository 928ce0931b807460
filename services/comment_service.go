package services

import (
	"errors"
	"time"

	"github.com/reviewhub-api/apperrors"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/models"
	"github.com/reviewhub-api/permissions"
	"github.com/reviewhub-api/repositories"
	"gorm.io/gorm"
)

// CommentService implements the comment operations under
// titles/{id}/reviews/{id}/comments.
type CommentService struct {
	commentRepo *repositories.CommentRepository
	reviewRepo  *repositories.ReviewRepository
}

// NewCommentService creates a new comment service instance
func NewCommentService() *CommentService {
	return &CommentService{
		commentRepo: repositories.NewCommentRepository(),
		reviewRepo:  repositories.NewReviewRepository(),
	}
}

// ListComments retrieves a review's comments; open to anonymous requesters
func (s *CommentService) ListComments(titleID, reviewID uint, filter dto.PageFilter) ([]dto.CommentResponse, int64, error) {
	if _, err := s.resolveReview(titleID, reviewID); err != nil {
		return nil, 0, err
	}

	comments, totalCount, err := s.commentRepo.FindByReview(reviewID, filter.Page, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = toCommentResponse(comment)
	}
	return responses, totalCount, nil
}

// GetComment retrieves one comment scoped to its review and title
func (s *CommentService) GetComment(titleID, reviewID, commentID uint) (dto.CommentResponse, error) {
	comment, err := s.resolveComment(titleID, reviewID, commentID)
	if err != nil {
		return dto.CommentResponse{}, err
	}
	return toCommentResponse(comment), nil
}

// CreateComment attaches a comment to a review. The author is always the
// requester; there is no uniqueness rule.
func (s *CommentService) CreateComment(requester *models.User, titleID, reviewID uint, req dto.CommentRequest) (dto.CommentResponse, error) {
	if !permissions.CanCreateContent(requester) {
		return dto.CommentResponse{}, apperrors.ErrAuthRequired
	}
	if _, err := s.resolveReview(titleID, reviewID); err != nil {
		return dto.CommentResponse{}, err
	}

	comment, err := s.commentRepo.Create(models.Comment{
		ReviewID: reviewID,
		AuthorID: requester.ID,
		Text:     req.Text,
		PubDate:  time.Now(),
	})
	if err != nil {
		return dto.CommentResponse{}, err
	}

	comment.Author = *requester
	return toCommentResponse(comment), nil
}

// UpdateComment edits a comment's text
func (s *CommentService) UpdateComment(requester *models.User, titleID, reviewID, commentID uint, req dto.CommentRequest) (dto.CommentResponse, error) {
	comment, err := s.resolveComment(titleID, reviewID, commentID)
	if err != nil {
		return dto.CommentResponse{}, err
	}
	if err := s.requireEditAuthority(requester, comment.AuthorID); err != nil {
		return dto.CommentResponse{}, err
	}

	comment.Text = req.Text
	if err := s.commentRepo.Update(comment); err != nil {
		return dto.CommentResponse{}, err
	}
	return toCommentResponse(comment), nil
}

// DeleteComment removes a comment
func (s *CommentService) DeleteComment(requester *models.User, titleID, reviewID, commentID uint) error {
	comment, err := s.resolveComment(titleID, reviewID, commentID)
	if err != nil {
		return err
	}
	if err := s.requireEditAuthority(requester, comment.AuthorID); err != nil {
		return err
	}
	return s.commentRepo.Delete(commentID)
}

func (s *CommentService) resolveReview(titleID, reviewID uint) (models.Review, error) {
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

func (s *CommentService) resolveComment(titleID, reviewID, commentID uint) (models.Comment, error) {
	if _, err := s.resolveReview(titleID, reviewID); err != nil {
		return models.Comment{}, err
	}

	comment, err := s.commentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return comment, apperrors.NotFoundf("comment %d", commentID)
		}
		return comment, err
	}
	if comment.ReviewID != reviewID {
		return comment, apperrors.NotFoundf("comment %d for review %d", commentID, reviewID)
	}
	return comment, nil
}

func (s *CommentService) requireEditAuthority(requester *models.User, authorID uint) error {
	if requester == nil {
		return apperrors.ErrAuthRequired
	}
	if !permissions.CanEditContent(requester, authorID) {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

func toCommentResponse(comment models.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:      comment.ID,
		Text:    comment.Text,
		Author:  comment.Author.Username,
		PubDate: comment.PubDate,
	}
}
