package store

import (
	"context"

	"github.com/MKhiriev/go-persona-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Preferences is the small durable key/value store backing credential,
// session, lockout and wrapped-secret state. Each single-key write is
// atomic; SetMany writes all given keys in one transaction.
type Preferences interface {
	// Get returns the value stored under key or ErrPreferenceNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany inserts or replaces every entry of values atomically. A nil
	// value deletes the key.
	SetMany(ctx context.Context, values map[string][]byte) error

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// Sealer encrypts and decrypts preference values. A key vault handle
// satisfies it.
type Sealer interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// IdentityRepository persists identity records inside the encrypted record
// store.
type IdentityRepository interface {
	// Save inserts identity or updates the record with the same ID. An empty
	// ID is replaced with a new UUID. The stored record is returned.
	Save(ctx context.Context, identity models.Identity) (models.Identity, error)

	// Get returns the record with id or ErrRecordNotFound.
	Get(ctx context.Context, id string) (models.Identity, error)

	// List returns every record ordered by most recently updated first.
	List(ctx context.Context) ([]models.Identity, error)

	// Delete removes the record with id or returns ErrRecordNotFound.
	Delete(ctx context.Context, id string) error
}

// RecordStore is an opened, passphrase-protected record store.
type RecordStore interface {
	// Identities returns the repository of identity records.
	Identities() IdentityRepository

	// ExportPlaintext writes an unencrypted copy of the whole store to path.
	// path must not exist yet.
	ExportPlaintext(ctx context.Context, path string) error

	// ImportPlaintext replaces every identity with those of the unencrypted
	// store copy at path.
	ImportPlaintext(ctx context.Context, path string) error

	// Close releases the database. Every later call returns ErrStoreClosed.
	Close() error
}
