package repositories

import (
	"database/sql"

	"github.com/reviewhub-api/database"
	"github.com/reviewhub-api/models"
	"gorm.io/gorm"
)

// ReviewRepository handles database operations for reviews, including the
// read-time rating aggregation.
type ReviewRepository struct{}

// NewReviewRepository creates a new review repository instance
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

// FindByID retrieves a review with its author loaded
func (r *ReviewRepository) FindByID(id uint) (models.Review, error) {
	var review models.Review
	result := database.DB.Preload("Author").First(&review, "id = ?", id)
	return review, result.Error
}

// ExistsForTitleAndAuthor checks the one-review-per-author rule's fast path.
// The unique index remains the authority under concurrency.
func (r *ReviewRepository) ExistsForTitleAndAuthor(titleID, authorID uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Review{}).
		Where("title_id = ? AND author_id = ?", titleID, authorID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new review into the database
func (r *ReviewRepository) Create(review models.Review) (models.Review, error) {
	result := database.DB.Create(&review)
	return review, result.Error
}

// Update persists all fields of an existing review
func (r *ReviewRepository) Update(review models.Review) error {
	result := database.DB.Omit("Author", "Title").Save(&review)
	return result.Error
}

// Delete removes a review together with its comments
func (r *ReviewRepository) Delete(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Review{}, "id = ?", id)
		return result.Error
	})
}

// FindByTitle retrieves a title's reviews with their authors, paginated
func (r *ReviewRepository) FindByTitle(titleID uint, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var totalCount int64

	db := database.DB.Model(&models.Review{}).Where("title_id = ?", titleID)
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := db.Preload("Author").Order("id asc").Limit(pageSize).Offset(offset).Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}

	return reviews, totalCount, nil
}

// AverageScore computes a title's mean review score against the current
// review set. Nil when the title has no reviews.
func (r *ReviewRepository) AverageScore(titleID uint) (*float64, error) {
	var avg sql.NullFloat64
	err := database.DB.Model(&models.Review{}).
		Where("title_id = ?", titleID).
		Select("AVG(score)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// AverageScores computes mean scores for a batch of titles in one grouped
// query. Titles without reviews are absent from the map.
func (r *ReviewRepository) AverageScores(titleIDs []uint) (map[uint]float64, error) {
	averages := make(map[uint]float64, len(titleIDs))
	if len(titleIDs) == 0 {
		return averages, nil
	}

	type row struct {
		TitleID uint
		Avg     float64
	}
	var rows []row
	err := database.DB.Model(&models.Review{}).
		Where("title_id IN ?", titleIDs).
		Select("title_id, AVG(score) AS avg").
		Group("title_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		averages[r.TitleID] = r.Avg
	}
	return averages, nil
}
