package catalog

import "errors"

var (
	// ErrNotFound is returned when the requested entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden is returned when a mutation targets an admin user.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput is returned for malformed input before any store call.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict is returned when a store constraint rejects the write.
	ErrConflict = errors.New("resource conflict")
)
