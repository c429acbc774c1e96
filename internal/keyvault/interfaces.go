package keyvault

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/keyvault_mock.go -package=mock

// Purpose names what a vault key is used for. One key exists per purpose.
type Purpose string

const (
	// PurposeFieldEncryption protects small secrets such as the PIN and the
	// secure preference values.
	PurposeFieldEncryption Purpose = "field-encryption"

	// PurposePassphraseWrapping protects the database passphrase.
	PurposePassphraseWrapping Purpose = "passphrase-wrapping"
)

// Purposes lists every key purpose the vault manages.
var Purposes = []Purpose{PurposeFieldEncryption, PurposePassphraseWrapping}

// Alias is the backend-level name of the key for p.
func (p Purpose) Alias() string {
	return "persona-keeper." + string(p)
}

// Tier is the protection level of a key backend.
type Tier int

const (
	// TierIsolated keys live in an OS-managed keystore outside the process.
	TierIsolated Tier = iota + 1
	// TierTrusted keys are sealed on disk under a device-bound key.
	TierTrusted
)

func (t Tier) String() string {
	switch t {
	case TierIsolated:
		return "isolated"
	case TierTrusted:
		return "trusted"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Key is symmetric key material held by a backend. Raw bytes are never
// exposed; callers can only encrypt and decrypt with it.
type Key interface {
	// Encrypt returns nonce ‖ ciphertext ‖ tag.
	Encrypt(plaintext []byte) ([]byte, error)
	// Decrypt reverses Encrypt.
	Decrypt(ciphertext []byte) ([]byte, error)
}

// KeyHandle is an opaque reference to the vault key of one purpose.
type KeyHandle interface {
	Key
	Purpose() Purpose
	Tier() Tier
}

// Backend stores keys of one tier.
type Backend interface {
	Tier() Tier
	// Lookup returns the key stored under alias. ErrKeyNotFound and
	// ErrTierUnavailable let the vault try the next tier; any other error
	// means a key may exist but cannot be read.
	Lookup(alias string) (Key, error)
	// Generate creates a new AES-256 key under alias. It returns
	// ErrKeyExists rather than replace an existing key.
	Generate(alias string) (Key, error)
	// Delete removes the key under alias. Missing keys are not an error.
	Delete(alias string) error
}

// KeyVault produces and uses device-bound symmetric keys and owns the
// database passphrase.
type KeyVault interface {
	// GetOrCreateKey returns the key for purpose, creating it on first use.
	// Concurrent callers always observe the same single key.
	GetOrCreateKey(ctx context.Context, purpose Purpose) (KeyHandle, error)

	// Wrap encrypts plaintext under handle and returns base64 of
	// nonce ‖ ciphertext ‖ tag. plaintext is zeroed before returning.
	Wrap(handle KeyHandle, plaintext []byte) (string, error)

	// Unwrap reverses Wrap. It returns ErrDecryption when the blob does
	// not authenticate.
	Unwrap(handle KeyHandle, blob string) ([]byte, error)

	// GetDatabasePassphrase returns the 64-character hex passphrase of the
	// record store, minting and persisting its wrapped form on first call.
	// The caller owns the returned buffer and must wipe it.
	GetDatabasePassphrase(ctx context.Context) ([]byte, error)

	// ClearAllKeys deletes every key in every tier and every wrapped
	// secret. Data encrypted under the deleted keys is unrecoverable.
	ClearAllKeys(ctx context.Context) error
}
