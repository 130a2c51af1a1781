package store

import "errors"

var (
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrSubjectNotFound is returned when no subject matches an id or name
	ErrSubjectNotFound = errors.New("subject not found")
)
