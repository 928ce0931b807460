package dto

import (
	"time"
)

// ReviewRequest is the review write payload
type ReviewRequest struct {
	Text  string `json:"text" binding:"required"`
	Score int    `json:"score"`
}

// ReviewUpdateRequest is a partial review update; pub_date is not
// updatable.
type ReviewUpdateRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

// ReviewResponse renders the author by username, as the API exposes no
// numeric user ids.
type ReviewResponse struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

// CommentRequest is the comment write payload
type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse mirrors ReviewResponse without the score
type CommentResponse struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

// PageFilter is the paging shared by review, comment and catalog lists
type PageFilter struct {
	Page     int
	PageSize int
}
