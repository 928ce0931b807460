package models

import (
	"time"
)

// Review score bounds, inclusive.
const (
	MinScore = 1
	MaxScore = 10
)

// Review is one user's scored critique of one title. The composite unique
// index enforces at most one review per (title, author) pair; concurrent
// creates for the same pair are serialized by the database, not the
// application.
type Review struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	TitleID  uint      `json:"-" gorm:"not null;uniqueIndex:idx_reviews_title_author"`
	Title    Title     `json:"-"`
	AuthorID uint      `json:"-" gorm:"not null;uniqueIndex:idx_reviews_title_author"`
	Author   User      `json:"-"`
	Text     string    `json:"text" gorm:"not null"`
	Score    int       `json:"score" gorm:"not null"`
	PubDate  time.Time `json:"pub_date"`
}

// Comment is attached to a review. No uniqueness rule: a user may comment on
// the same review any number of times.
type Comment struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	ReviewID uint      `json:"-" gorm:"not null"`
	Review   Review    `json:"-"`
	AuthorID uint      `json:"-" gorm:"not null"`
	Author   User      `json:"-"`
	Text     string    `json:"text" gorm:"not null"`
	PubDate  time.Time `json:"pub_date"`
}
