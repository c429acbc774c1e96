package backup

import "errors"

var (
	// ErrFormat is returned when a bundle is too short to hold the salt and
	// IV. No key derivation is attempted.
	ErrFormat = errors.New("malformed backup bundle")

	// ErrAuthenticationFailure is returned when the bundle does not decrypt.
	// A wrong password and a corrupted bundle are not told apart.
	ErrAuthenticationFailure = errors.New("wrong password or corrupted backup")
)
