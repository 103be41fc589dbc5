package database

import "errors"

// Errors shared by every repository implementation.
var (
	ErrNotFound       = errors.New("document not found")
	ErrDuplicate      = errors.New("document already exists")
	ErrStatusConflict = errors.New("document is not in the expected status")
)
