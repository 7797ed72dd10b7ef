package service

import "errors"

var (
	// ErrSaveFailed is returned when the store rejects an outfit. The composition is left intact.
	ErrSaveFailed = errors.New("could not save the outfit, please try again")
	// ErrIncompleteDetails is returned when an outfit is saved without a name, a season or a valid date
	ErrIncompleteDetails = errors.New("outfit details are incomplete")
	// ErrSessionNotFound is returned for unknown, expired or foreign composition sessions
	ErrSessionNotFound = errors.New("composition session not found")
	// ErrUnauthorized is returned for missing, unknown or expired tokens
	ErrUnauthorized = errors.New("unauthorized")
	// ErrImportUnavailable is returned when Drive credentials are not configured
	ErrImportUnavailable = errors.New("drive import is not configured")
	// ErrInvalidItem is returned when a clothing item draft misses required fields
	ErrInvalidItem = errors.New("invalid clothing item")
	// ErrInvalidSignUp is returned when a sign up misses its username, name or password
	ErrInvalidSignUp = errors.New("username, name and password are required")
	// ErrPDFUnavailable is returned when no Chrome executable can be found
	ErrPDFUnavailable = errors.New("pdf rendering is not available")
)
