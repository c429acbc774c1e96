package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("invalid identity id")
	ErrEmptyName          = errors.New("first or last name is required")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidDateOfBirth = errors.New("date of birth must be YYYY-MM-DD and not in the future")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrFieldTooLong       = errors.New("field exceeds maximum length")
)
