package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/middleware"
	"github.com/reviewhub-api/services"
)

var categoryService = services.NewCategoryService()

// ListCategories returns categories with an optional name search
func ListCategories(c *gin.Context) {
	filter := pageFilter(c)
	categories, totalCount, err := categoryService.ListCategories(c.Query("search"), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(categories, totalCount, filter))
}

// GetCategory returns one category by slug
func GetCategory(c *gin.Context) {
	category, err := categoryService.GetCategory(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": category})
}

// CreateCategory creates a category (admin authority required)
func CreateCategory(c *gin.Context) {
	var req dto.SlugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := categoryService.CreateCategory(middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   category,
	})
}

// DeleteCategory removes a category by slug (admin authority required)
func DeleteCategory(c *gin.Context) {
	if err := categoryService.DeleteCategory(middleware.CurrentUser(c), c.Param("slug")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
