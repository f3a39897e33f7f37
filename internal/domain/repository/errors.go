package repository

import "errors"

var (
	// ErrNotFound is returned by any repository when the referenced row is absent.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint, e.g. the (itinerary_id, user_id) collaborator index.
	ErrDuplicate = errors.New("duplicate")
)
