package repositories

import (
	"github.com/reviewhub-api/database"
	"github.com/reviewhub-api/models"
	"gorm.io/gorm"
)

// GenreRepository handles database operations for genres
type GenreRepository struct{}

// NewGenreRepository creates a new genre repository instance
func NewGenreRepository() *GenreRepository {
	return &GenreRepository{}
}

// FindBySlug retrieves a genre by its slug
func (r *GenreRepository) FindBySlug(slug string) (models.Genre, error) {
	var genre models.Genre
	result := database.DB.First(&genre, "slug = ?", slug)
	return genre, result.Error
}

// FindBySlugs resolves a set of slugs to genre records, preserving no
// particular order. The caller checks the count to detect unknown slugs.
func (r *GenreRepository) FindBySlugs(slugs []string) ([]models.Genre, error) {
	var genres []models.Genre
	result := database.DB.Where("slug IN ?", slugs).Find(&genres)
	return genres, result.Error
}

// Create inserts a new genre into the database
func (r *GenreRepository) Create(genre models.Genre) (models.Genre, error) {
	result := database.DB.Create(&genre)
	return genre, result.Error
}

// Delete removes a genre by slug together with its title associations
func (r *GenreRepository) Delete(genre models.Genre) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", genre.ID).Delete(&models.GenreTitle{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Genre{}, "id = ?", genre.ID)
		return result.Error
	})
}

// FindWithPagination retrieves genres with an optional name search
func (r *GenreRepository) FindWithPagination(search string, page, pageSize int) ([]models.Genre, int64, error) {
	var genres []models.Genre
	var totalCount int64

	db := database.DB.Model(&models.Genre{})
	if search != "" {
		db = db.Where("LOWER(name) LIKE LOWER(?)", "%"+search+"%")
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := db.Order("slug asc").Limit(pageSize).Offset(offset).Find(&genres).Error; err != nil {
		return nil, 0, err
	}

	return genres, totalCount, nil
}
