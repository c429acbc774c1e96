package keyvault

import "errors"

var (
	// ErrKeyNotFound is returned by a [Backend] lookup when no key exists
	// under the requested alias.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyExists is returned by a [Backend] generate when a key already
	// exists under the alias. Existing keys are never overwritten.
	ErrKeyExists = errors.New("key already exists")

	// ErrTierUnavailable is returned when a key tier cannot be used on this
	// device. The vault falls back to the next tier.
	ErrTierUnavailable = errors.New("key tier unavailable")

	// ErrDecryption is returned when a wrapped secret does not authenticate
	// under its key (tampering, wrong key or format corruption).
	ErrDecryption = errors.New("decryption failed")
)
