package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reviewhub-api/dto"
	"github.com/reviewhub-api/middleware"
	"github.com/reviewhub-api/services"
)

var commentService = services.NewCommentService()

func commentPath(c *gin.Context) (titleID, reviewID uint, ok bool) {
	titleID, ok = uintParam(c, "titleID")
	if !ok {
		return
	}
	reviewID, ok = uintParam(c, "reviewID")
	return
}

// ListComments returns a review's comments
func ListComments(c *gin.Context) {
	titleID, reviewID, ok := commentPath(c)
	if !ok {
		return
	}

	filter := pageFilter(c)
	comments, totalCount, err := commentService.ListComments(titleID, reviewID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(comments, totalCount, filter))
}

// GetComment returns one comment scoped to its review
func GetComment(c *gin.Context) {
	titleID, reviewID, ok := commentPath(c)
	if !ok {
		return
	}
	commentID, ok := uintParam(c, "commentID")
	if !ok {
		return
	}

	comment, err := commentService.GetComment(titleID, reviewID, commentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": comment})
}

// CreateComment attaches a comment to a review as the requester
func CreateComment(c *gin.Context) {
	titleID, reviewID, ok := commentPath(c)
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := commentService.CreateComment(middleware.CurrentUser(c), titleID, reviewID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": comment})
}

// UpdateComment edits a comment's text
func UpdateComment(c *gin.Context) {
	titleID, reviewID, ok := commentPath(c)
	if !ok {
		return
	}
	commentID, ok := uintParam(c, "commentID")
	if !ok {
		return
	}

	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := commentService.UpdateComment(middleware.CurrentUser(c), titleID, reviewID, commentID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": comment})
}

// DeleteComment removes a comment
func DeleteComment(c *gin.Context) {
	titleID, reviewID, ok := commentPath(c)
	if !ok {
		return
	}
	commentID, ok := uintParam(c, "commentID")
	if !ok {
		return
	}

	if err := commentService.DeleteComment(middleware.CurrentUser(c), titleID, reviewID, commentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
