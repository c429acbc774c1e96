// Package vaulttest provides a key vault over an in-memory backend for
// tests of packages that wrap secrets through [keyvault.KeyVault].
package vaulttest

import (
	"sync"
	"testing"

	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
	"github.com/MKhiriev/go-persona-keeper/internal/keyvault"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/store"
)

// Backend is an in-memory trusted-tier backend.
type Backend struct {
	mu   sync.Mutex
	keys map[string][]byte
}

// NewBackend returns an empty in-memory backend.
func NewBackend() *Backend {
	return &Backend{keys: make(map[string][]byte)}
}

func (b *Backend) Tier() keyvault.Tier { return keyvault.TierTrusted }

func (b *Backend) Lookup(alias string) (keyvault.Key, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	raw, ok := b.keys[alias]
	if !ok {
		return nil, keyvault.ErrKeyNotFound
	}
	return memKey(raw), nil
}

func (b *Backend) Generate(alias string) (keyvault.Key, error) {
	raw, err := crypto.RandomBytes(crypto.KeySize)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.keys[alias] = raw
	return memKey(raw), nil
}

func (b *Backend) Delete(alias string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.keys, alias)
	return nil
}

type memKey []byte

func (k memKey) Encrypt(plaintext []byte) ([]byte, error) {
	return crypto.Seal(k, plaintext)
}

func (k memKey) Decrypt(ciphertext []byte) ([]byte, error) {
	pt, err := crypto.Open(k, ciphertext)
	if err != nil {
		return nil, keyvault.ErrDecryption
	}
	return pt, nil
}

// NewVault returns a key vault persisting wrapped secrets to prefs.
func NewVault(t testing.TB, prefs store.Preferences) keyvault.KeyVault {
	t.Helper()
	return keyvault.New(prefs, logger.Nop(), NewBackend())
}
