package utils

import (
	"regexp"
	"time"

	"github.com/reviewhub-api/apperrors"
	"github.com/reviewhub-api/models"
)

// MinYear is the historical floor for title years.
const MinYear = -3400

var (
	usernameRegexp = regexp.MustCompile(`^[\w.@+-]+$`)
	slugRegexp     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

// ValidateYear checks a title year against the historical floor and the
// current year. The ceiling is evaluated per call, never cached.
func ValidateYear(year int) error {
	currentYear := time.Now().Year()
	if year < MinYear || year > currentYear {
		return apperrors.Validationf("year must be between %d and %d", MinYear, currentYear)
	}
	return nil
}

// ValidateScore checks a review score against the inclusive [1,10] range.
func ValidateScore(score int) error {
	if score < models.MinScore || score > models.MaxScore {
		return apperrors.Validationf("score must be between %d and %d", models.MinScore, models.MaxScore)
	}
	return nil
}

// ValidateUsername rejects the reserved name "me" and malformed usernames.
func ValidateUsername(username string) error {
	if username == "me" {
		return apperrors.Validationf("username 'me' is reserved")
	}
	if len(username) > 150 || !usernameRegexp.MatchString(username) {
		return apperrors.Validationf("invalid username %q", username)
	}
	return nil
}

// ValidateSlug checks the URL-safe identifier shape used by categories and
// genres.
func ValidateSlug(slug string) error {
	if slug == "" || len(slug) > 50 || !slugRegexp.MatchString(slug) {
		return apperrors.Validationf("invalid slug %q", slug)
	}
	return nil
}
