package services

import (
	"testing"

	"github.com/reviewhub-api/database"
	"github.com/reviewhub-api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB points the global connection at a fresh in-memory sqlite
// database named after the test.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
}

func databaseCount(model any, count *int64) error {
	return database.DB.Model(model).Count(count).Error
}

func createUser(t *testing.T, username string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createSuperuser(t *testing.T, username string) models.User {
	t.Helper()
	user := models.User{
		Username:    username,
		Email:       username + "@example.com",
		Role:        models.RoleUser,
		IsSuperuser: true,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, name, slug string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Slug: slug}
	require.NoError(t, database.DB.Create(&category).Error)
	return category
}

func createGenre(t *testing.T, name, slug string) models.Genre {
	t.Helper()
	genre := models.Genre{Name: name, Slug: slug}
	require.NoError(t, database.DB.Create(&genre).Error)
	return genre
}

func createTitle(t *testing.T, name string, year int, category models.Category, genres ...models.Genre) models.Title {
	t.Helper()
	title := models.Title{
		Name:       name,
		Year:       year,
		CategoryID: category.ID,
		Genres:     genres,
	}
	require.NoError(t, database.DB.Create(&title).Error)
	return title
}
