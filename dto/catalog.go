package dto

import (
	"github.com/reviewhub-api/models"
)

// SlugRequest is the create payload shared by categories and genres
type SlugRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// TitleRequest is the title write payload: category and genres arrive as
// slugs and are resolved to records at write time.
type TitleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Year        *int     `json:"year" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Genre       []string `json:"genre"`
}

// TitleUpdateRequest is a partial title update; a submitted genre list
// replaces the existing set wholesale.
type TitleUpdateRequest struct {
	Name        *string   `json:"name"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Genre       *[]string `json:"genre"`
}

// TitleResponse is the expanded read shape: full category and genre records
// plus the derived rating, nil when the title has no reviews.
type TitleResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Year        int             `json:"year"`
	Rating      *int            `json:"rating"`
	Description string          `json:"description"`
	Genre       []models.Genre  `json:"genre"`
	Category    models.Category `json:"category"`
}

// TitleFilter holds the AND-combined list filters plus paging
type TitleFilter struct {
	Category string
	Genre    string
	Name     string
	Year     *int
	Page     int
	PageSize int
}
