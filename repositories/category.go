package repositories

import (
	"github.com/reviewhub-api/database"
	"github.com/reviewhub-api/models"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct{}

// NewCategoryRepository creates a new category repository instance
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// FindBySlug retrieves a category by its slug
func (r *CategoryRepository) FindBySlug(slug string) (models.Category, error) {
	var category models.Category
	result := database.DB.First(&category, "slug = ?", slug)
	return category, result.Error
}

// Create inserts a new category into the database
func (r *CategoryRepository) Create(category models.Category) (models.Category, error) {
	result := database.DB.Create(&category)
	return category, result.Error
}

// Delete removes a category by slug
func (r *CategoryRepository) Delete(slug string) error {
	result := database.DB.Delete(&models.Category{}, "slug = ?", slug)
	return result.Error
}

// CountTitles counts the titles referencing a category. Deletion policy
// depends on this: a referenced category cannot be removed.
func (r *CategoryRepository) CountTitles(categoryID uint) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Title{}).Where("category_id = ?", categoryID).Count(&count)
	return count, result.Error
}

// FindWithPagination retrieves categories with an optional name search
func (r *CategoryRepository) FindWithPagination(search string, page, pageSize int) ([]models.Category, int64, error) {
	var categories []models.Category
	var totalCount int64

	db := database.DB.Model(&models.Category{})
	if search != "" {
		db = db.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Order("slug asc").Limit(pageSize).Offset(offset).Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	return categories, totalCount, nil
}
