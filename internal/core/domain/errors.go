package domain

import (
	"errors"
	"fmt"
)

// Not-found errors: a referenced id did not resolve. Mapped to 404.
var ErrUserNotFound = errors.New("user not found")
var ErrPlaceNotFound = errors.New("place not found")
var ErrAmenityNotFound = errors.New("amenity not found")
var ErrReviewNotFound = errors.New("review not found")
var ErrOwnerNotFound = errors.New("owner not found")

// Conflict errors: a uniqueness guarantee was violated. Mapped to 409.
var ErrEmailExists = errors.New("email already registered")
var ErrAmenityExists = errors.New("amenity already exists")
var ErrPlaceExists = errors.New("place already registered")
var ErrDuplicateReview = errors.New("place already reviewed by this user")

// ErrSelfReview rejects an owner reviewing their own place. Mapped to 400.
var ErrSelfReview = errors.New("cannot review your own place")

var ErrForbidden = errors.New("access forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports a single field constraint failure. It always maps
// to 400 and carries a human-readable reason for the client.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
