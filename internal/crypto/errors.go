package crypto

import "errors"

var (
	// ErrCiphertextTooShort is returned by Open when the blob cannot even
	// hold a GCM nonce and tag.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrDecryption is returned by Open when the GCM authentication tag does
	// not verify (wrong key, tampering, or corruption).
	ErrDecryption = errors.New("decryption failed")

	// ErrInvalidKeySize is returned when a key is not 16, 24 or 32 bytes long.
	ErrInvalidKeySize = errors.New("invalid key size")
)
