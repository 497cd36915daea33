package repository

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when a create collides with the
	// unique email index, including create races on the same email.
	ErrDuplicateEmail = errors.New("email already exists")
)
