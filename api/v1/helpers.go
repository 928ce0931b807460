package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/reviewhub-api/apperrors"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/logger"
)

// respondError maps an outcome kind to its wire status. The kinds stay
// distinguishable: permission vs validation vs not-found never collapse
// into one status.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrDuplicateReview):
		status = http.StatusConflict
	case errors.Is(err, apperrors.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, apperrors.ErrAuthRequired):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		logger.Errorf("internal error: %v", err)
		c.JSON(status, gin.H{"status": "error", "message": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"status": "error", "message": err.Error()})
}

// respondBindError reports a malformed or incomplete request body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "error",
		"message": "invalid request body",
		"error":   err.Error(),
	})
}

// pageFilter parses the page/pageSize query parameters with defaults
func pageFilter(c *gin.Context) dto.PageFilter {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}
	return dto.PageFilter{Page: page, PageSize: pageSize}
}

// uintParam parses a numeric path parameter; a non-numeric value can never
// address an existing record, so the miss is a 404.
func uintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": name + " must be a number",
		})
		return 0, false
	}
	return uint(value), true
}

// listEnvelope is the success shape shared by the paginated list endpoints
func listEnvelope(results any, totalCount int64, filter dto.PageFilter) gin.H {
	return gin.H{
		"status": "success",
		"data": gin.H{
			"count":    totalCount,
			"page":     filter.Page,
			"pageSize": filter.PageSize,
			"results":  results,
		},
	}
}
