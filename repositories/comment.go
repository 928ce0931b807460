package repositories

import (
	"github.com/reviewhub-api/database"
	"github.com/reviewhub-api/models"
)

// CommentRepository handles database operations for comments
type CommentRepository struct{}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// FindByID retrieves a comment with its author loaded
func (r *CommentRepository) FindByID(id uint) (models.Comment, error) {
	var comment models.Comment
	result := database.DB.Preload("Author").First(&comment, "id = ?", id)
	return comment, result.Error
}

// Create inserts a new comment into the database
func (r *CommentRepository) Create(comment models.Comment) (models.Comment, error) {
	result := database.DB.Create(&comment)
	return comment, result.Error
}

// Update persists all fields of an existing comment
func (r *CommentRepository) Update(comment models.Comment) error {
	result := database.DB.Omit("Author", "Review").Save(&comment)
	return result.Error
}

// Delete removes a comment by primary key
func (r *CommentRepository) Delete(id uint) error {
	result := database.DB.Delete(&models.Comment{}, "id = ?", id)
	return result.Error
}

// FindByReview retrieves a review's comments with their authors, paginated
func (r *CommentRepository) FindByReview(reviewID uint, page, pageSize int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var totalCount int64

	db := database.DB.Model(&models.Comment{}).Where("review_id = ?", reviewID)
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := db.Preload("Author").Order("id asc").Limit(pageSize).Offset(offset).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, totalCount, nil
}
