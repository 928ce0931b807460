package repositories

import (
	"github.com/reviewhub-api/database"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/models"
	"gorm.io/gorm"
)

// TitleRepository handles database operations for titles
type TitleRepository struct{}

// NewTitleRepository creates a new title repository instance
func NewTitleRepository() *TitleRepository {
	return &TitleRepository{}
}

// FindByID retrieves a title with its category and genres expanded
func (r *TitleRepository) FindByID(id uint) (models.Title, error) {
	var title models.Title
	result := database.DB.Preload("Category").Preload("Genres").First(&title, "id = ?", id)
	return title, result.Error
}

// Exists checks whether a title exists without loading associations
func (r *TitleRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Title{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts a new title and its genre associations
func (r *TitleRepository) Create(title models.Title) (models.Title, error) {
	result := database.DB.Create(&title)
	return title, result.Error
}

// Update persists the scalar fields and, when replaceGenres is set, swaps
// the genre set wholesale, all inside one transaction so a failed write
// leaves the title untouched.
func (r *TitleRepository) Update(title *models.Title, genres []models.Genre, replaceGenres bool) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Genres", "Category").Save(title).Error; err != nil {
			return err
		}
		if replaceGenres {
			return tx.Model(title).Association("Genres").Replace(genres)
		}
		return nil
	})
}

// Delete removes a title and cascades through its reviews and their
// comments inside one transaction.
func (r *TitleRepository) Delete(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		reviewIDs := tx.Model(&models.Review{}).Select("id").Where("title_id = ?", id)
		if err := tx.Where("review_id IN (?)", reviewIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("title_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("title_id = ?", id).Delete(&models.GenreTitle{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Title{}, "id = ?", id)
		return result.Error
	})
}

// FindWithFilters retrieves titles with the AND-combined list filters,
// category and genres expanded.
func (r *TitleRepository) FindWithFilters(filter dto.TitleFilter) ([]models.Title, int64, error) {
	var titles []models.Title
	var totalCount int64

	db := database.DB.Model(&models.Title{})

	if filter.Category != "" {
		db = db.Joins("JOIN categories ON categories.id = titles.category_id").
			Where("categories.slug = ?", filter.Category)
	}
	if filter.Genre != "" {
		db = db.Joins("JOIN genre_titles ON genre_titles.title_id = titles.id").
			Joins("JOIN genres ON genres.id = genre_titles.genre_id").
			Where("genres.slug = ?", filter.Genre)
	}
	if filter.Name != "" {
		db = db.Where("LOWER(titles.name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.Year != nil {
		db = db.Where("titles.year = ?", *filter.Year)
	}

	if err := db.Session(&gorm.Session{}).Distinct("titles.id").Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := db.Session(&gorm.Session{}).Select("titles.*").
		Preload("Category").Preload("Genres").
		Order("titles.id asc").Limit(filter.PageSize).Offset(offset).
		Find(&titles).Error
	if err != nil {
		return nil, 0, err
	}

	return titles, totalCount, nil
}
