package credential

import "errors"

var (
	// ErrInvalidPinFormat is returned by SetPin when the PIN is not 4 to 8
	// ASCII digits.
	ErrInvalidPinFormat = errors.New("pin must be 4 to 8 digits")

	// ErrPinNotSet is returned by VerifyPin when no PIN is configured.
	ErrPinNotSet = errors.New("pin is not set")

	// ErrInvalidAutoLock is returned for a negative auto-lock timeout.
	ErrInvalidAutoLock = errors.New("auto-lock minutes must not be negative")
)
