package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/middleware"
	"github.com/reviewhub-api/services"
)

var reviewService = services.NewReviewService()

// ListReviews returns a title's reviews
func ListReviews(c *gin.Context) {
	titleID, ok := uintParam(c, "titleID")
	if !ok {
		return
	}

	filter := pageFilter(c)
	reviews, totalCount, err := reviewService.ListReviews(titleID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(reviews, totalCount, filter))
}

// GetReview returns one review scoped to its title
func GetReview(c *gin.Context) {
	titleID, ok := uintParam(c, "titleID")
	if !ok {
		return
	}
	reviewID, ok := uintParam(c, "reviewID")
	if !ok {
		return
	}

	review, err := reviewService.GetReview(titleID, reviewID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": review})
}

// CreateReview posts the requester's review of a title
func CreateReview(c *gin.Context) {
	titleID, ok := uintParam(c, "titleID")
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	review, err := reviewService.CreateReview(middleware.CurrentUser(c), titleID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": review})
}

// UpdateReview edits a review's text and/or score
func UpdateReview(c *gin.Context) {
	titleID, ok := uintParam(c, "titleID")
	if !ok {
		return
	}
	reviewID, ok := uintParam(c, "reviewID")
	if !ok {
		return
	}

	var req dto.ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	review, err := reviewService.UpdateReview(middleware.CurrentUser(c), titleID, reviewID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": review})
}

// DeleteReview removes a review and its comments
func DeleteReview(c *gin.Context) {
	titleID, ok := uintParam(c, "titleID")
	if !ok {
		return
	}
	reviewID, ok := uintParam(c, "reviewID")
	if !ok {
		return
	}

	if err := reviewService.DeleteReview(middleware.CurrentUser(c), titleID, reviewID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
