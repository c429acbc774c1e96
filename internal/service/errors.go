package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrEmptyPassword is returned when an export or import password is empty.
	ErrEmptyPassword = errors.New("backup password must not be empty")
)
