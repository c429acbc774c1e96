package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("alias api token rejected")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("rate limited")
	ErrInternalServerError = errors.New("alias api internal error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNotConfigured is returned when no alias API base URL is set.
	ErrNotConfigured = errors.New("alias api not configured")
)
