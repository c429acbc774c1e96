//go:build darwin

package keyvault

import (
	"errors"
	"fmt"

	keychain "github.com/keybase/go-keychain"

	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
)

const (
	keychainService = "io.persona-keeper.keyvault"
	keychainLabel   = "Persona Keeper vault key"
)

// keychainBackend is the isolated tier on macOS: key bytes are stored as a
// device-local generic password item readable only while the device is
// unlocked.
type keychainBackend struct {
	logger *logger.Logger
}

// NewKeychainBackend returns the isolated-tier backend.
func NewKeychainBackend(log *logger.Logger) Backend {
	return &keychainBackend{logger: log}
}

func (b *keychainBackend) Tier() Tier { return TierIsolated }

func (b *keychainBackend) Lookup(alias string) (Key, error) {
	data, err := keychain.GetGenericPassword(keychainService, alias, "", "")
	if errors.Is(err, keychain.ErrorItemNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		// the item may exist, so this must not be read as an empty tier
		return nil, fmt.Errorf("read keychain item %q: %w", alias, err)
	}
	if len(data) == 0 {
		return nil, ErrKeyNotFound
	}
	if len(data) != crypto.KeySize {
		crypto.Wipe(data)
		return nil, fmt.Errorf("keychain item %q has %d bytes", alias, len(data))
	}

	return newEnclaveKey(data), nil
}

func (b *keychainBackend) Generate(alias string) (Key, error) {
	raw, err := crypto.RandomBytes(crypto.KeySize)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	item := keychain.NewGenericPassword(keychainService, alias, keychainLabel, raw, "")
	item.SetSynchronizable(keychain.SynchronizableNo)
	item.SetAccessible(keychain.AccessibleWhenUnlockedThisDeviceOnly)

	err = keychain.AddItem(item)
	if errors.Is(err, keychain.ErrorDuplicateItem) {
		crypto.Wipe(raw)
		b.logger.Error().Err(err).Str("func", "keychainBackend.Generate").Str("alias", alias).Msg("keychain already holds a key")
		return nil, fmt.Errorf("keychain item %q: %w", alias, ErrKeyExists)
	}
	if err != nil {
		crypto.Wipe(raw)
		b.logger.Warn().Err(err).Str("func", "keychainBackend.Generate").Str("alias", alias).Msg("keychain rejected key")
		return nil, fmt.Errorf("%w: %w", ErrTierUnavailable, err)
	}

	return newEnclaveKey(raw), nil
}

func (b *keychainBackend) Delete(alias string) error {
	query := keychain.NewGenericPassword(keychainService, alias, "", nil, "")
	if err := keychain.DeleteItem(query); err != nil && !errors.Is(err, keychain.ErrorItemNotFound) {
		return fmt.Errorf("remove keychain item: %w", err)
	}
	return nil
}
