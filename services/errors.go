package services

import "errors"

// Sentinel errors shared by all services so controllers can pick the right
// HTTP status without string matching.
var (
	// ErrForbidden marks a permission failure (HTTP 403).
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound marks a missing record (HTTP 404).
	ErrNotFound = errors.New("record not found")
	// ErrValidation marks a rejected request body (HTTP 400).
	ErrValidation = errors.New("validation failed")
)
