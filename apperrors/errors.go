// Package apperrors defines the outcome kinds the service layer returns.
// Handlers map each kind to a wire status; the kinds themselves stay
// transport-agnostic.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means a field value failed a business rule.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateReview means the (title, author) pair already has a review.
	ErrDuplicateReview = errors.New("review already exists for this title and author")

	// ErrPermissionDenied means the requester is authenticated but not allowed.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrAuthRequired means the operation needs an authenticated requester.
	ErrAuthRequired = errors.New("authentication required")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}
