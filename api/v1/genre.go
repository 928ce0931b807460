package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/middleware"
	"github.com/reviewhub-api/services"
)

var genreService = services.NewGenreService()

// ListGenres returns genres with an optional name search
func ListGenres(c *gin.Context) {
	filter := pageFilter(c)
	genres, totalCount, err := genreService.ListGenres(c.Query("search"), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(genres, totalCount, filter))
}

// GetGenre returns one genre by slug
func GetGenre(c *gin.Context) {
	genre, err := genreService.GetGenre(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": genre})
}

// CreateGenre creates a genre (admin authority required)
func CreateGenre(c *gin.Context) {
	var req dto.SlugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	genre, err := genreService.CreateGenre(middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   genre,
	})
}

// DeleteGenre removes a genre by slug (admin authority required)
func DeleteGenre(c *gin.Context) {
	if err := genreService.DeleteGenre(middleware.CurrentUser(c), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
