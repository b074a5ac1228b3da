package errors

import "errors"

var (
	ErrNotFound = errors.New("space not found")

	ErrAlreadyOccupied = errors.New("space is already occupied")

	ErrAlreadyAvailable = errors.New("space is already available")
)
