package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/middleware"
	"github.com/reviewhub-api/services"
)

var titleService = services.NewTitleService()

// ListTitles godoc
// @Summary List titles with pagination and filtering
// @Description Get titles with category, genres and derived rating; all filters combine with AND
// @Tags titles
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param category query string false "Category slug"
// @Param genre query string false "Genre slug"
// @Param name query string false "Name substring, case-insensitive"
// @Param year query int false "Exact year"
// @Success 200 {object} dto.TitleResponse
// @Router /titles [get]
func ListTitles(c *gin.Context) {
	page := pageFilter(c)
	filter := dto.TitleFilter{
		Category: c.Query("category"),
		Genre:    c.Query("genre"),
		Name:     c.Query("name"),
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "year must be a number",
			})
			return
		}
		filter.Year = &year
	}

	titles, totalCount, err := titleService.ListTitles(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(titles, totalCount, page))
}

// GetTitle godoc
// @Summary Get a single title
// @Description Get one title with expanded category, genres and rating
// @Tags titles
// @Produce json
// @Param titleID path int true "Title ID"
// @Success 200 {object} dto.TitleResponse
// @Router /titles/{titleID} [get]
func GetTitle(c *gin.Context) {
	titleID, ok := uintParam(c, "titleID")
	if !ok {
		return
	}

	title, err := titleService.GetTitle(titleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": title})
}

// CreateTitle godoc
// @Summary Create a title
// @Description Create a title from slug-addressed category and genres; admin authority required
// @Tags titles
// @Accept json
// @Produce json
// @Param request body dto.TitleRequest true "Title details"
// @Success 201 {object} dto.TitleResponse
// @Router /titles [post]
func CreateTitle(c *gin.Context) {
	var req dto.TitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	title, err := titleService.CreateTitle(middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": title})
}

// UpdateTitle godoc
// @Summary Update a title
// @Description Apply a partial update; a submitted genre list replaces the stored set; admin authority required
// @Tags titles
// @Accept json
// @Produce json
// @Param titleID path int true "Title ID"
// @Param request body dto.TitleUpdateRequest true "Fields to change"
// @Success 200 {object} dto.TitleResponse
// @Router /titles/{titleID} [patch]
func UpdateTitle(c *gin.Context) {
	titleID, ok := uintParam(c, "titleID")
	if !ok {
		return
	}

	var req dto.TitleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	title, err := titleService.UpdateTitle(middleware.CurrentUser(c), titleID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": title})
}

// DeleteTitle godoc
// @Summary Delete a title
// @Description Remove a title together with its reviews and their comments; admin authority required
// @Tags titles
// @Produce json
// @Param titleID path int true "Title ID"
// @Success 204 "No Content"
// @Router /titles/{titleID} [delete]
func DeleteTitle(c *gin.Context) {
	titleID, ok := uintParam(c, "titleID")
	if !ok {
		return
	}

	if err := titleService.DeleteTitle(middleware.CurrentUser(c), titleID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
