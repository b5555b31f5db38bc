package storage

import "errors"

var (
	ErrNotFound         = errors.New("storage: photo not found")
	ErrPermissionDenied = errors.New("storage: permission denied")

	// ErrInvalidName covers empty names and names that are not a single
	// path element.
	ErrInvalidName = errors.New("storage: invalid photo name")
)
