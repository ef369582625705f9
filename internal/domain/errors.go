package domain

import "errors"

var (
	// ErrNotFound is returned by stores when no record matches an id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert collides with an existing record.
	ErrDuplicate = errors.New("record already exists")
)
