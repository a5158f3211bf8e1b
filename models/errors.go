package models

import "errors"

// Sentinel errors for the quest core. Callers classify failures with
// errors.Is; wrapping adds context without losing the category.
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrConflict            = errors.New("conflict")
	ErrInvalidState        = errors.New("invalid state")
	ErrForbidden           = errors.New("forbidden")
	ErrAuthentication      = errors.New("invalid credentials")
	ErrExternalUnavailable = errors.New("external service unavailable")
)
