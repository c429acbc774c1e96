// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keyvault produces and uses device-bound AES-256 keys without ever
// handing raw key bytes to callers, and owns the record store passphrase.
//
// Keys are looked up in tier order (isolated first, trusted second) and
// created in the first tier that accepts them. Wrapped secrets are persisted
// in the preferences store under the "vault." prefix.
package keyvault

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-persona-keeper/internal/config"
	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/store"
)

const (
	// PrefsPrefix prefixes every preference owned by the vault.
	PrefsPrefix = "vault."

	prefDatabasePassphrase = PrefsPrefix + "db_passphrase"

	passphraseEntropyBytes = 32
)

type keyVault struct {
	backends []Backend
	prefs    store.Preferences
	logger   *logger.Logger

	group singleflight.Group

	mu    sync.RWMutex
	cache map[Purpose]KeyHandle

	// serializes minting of the database passphrase
	passphraseMu sync.Mutex
}

// New constructs a [KeyVault] over the given backends in preference order.
// prefs receives the wrapped secrets; values stored there are already
// encrypted, so it should be the raw (unsealed) preferences store.
func New(prefs store.Preferences, log *logger.Logger, backends ...Backend) KeyVault {
	return &keyVault{
		backends: backends,
		prefs:    prefs,
		logger:   log.GetChildLogger("keyvault"),
		cache:    make(map[Purpose]KeyHandle, len(Purposes)),
	}
}

// NewFromConfig builds the platform backends from cfg: the OS keychain tier
// unless disabled, then the trusted file tier under cfg.KeyDir.
func NewFromConfig(cfg config.Vault, prefs store.Preferences, log *logger.Logger) KeyVault {
	backends := make([]Backend, 0, 2)
	if !cfg.DisableIsolatedTier {
		backends = append(backends, NewKeychainBackend(log))
	}
	backends = append(backends, NewFileBackend(cfg.KeyDir, log))

	return New(prefs, log, backends...)
}

func (v *keyVault) GetOrCreateKey(ctx context.Context, purpose Purpose) (KeyHandle, error) {
	if h, ok := v.cached(purpose); ok {
		return h, nil
	}

	res, err, _ := v.group.Do(string(purpose), func() (any, error) {
		if h, ok := v.cached(purpose); ok {
			return h, nil
		}

		h, err := v.resolve(ctx, purpose)
		if err != nil {
			return nil, err
		}

		v.mu.Lock()
		v.cache[purpose] = h
		v.mu.Unlock()

		return h, nil
	})
	if err != nil {
		return nil, err
	}

	return res.(KeyHandle), nil
}

func (v *keyVault) cached(purpose Purpose) (KeyHandle, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	h, ok := v.cache[purpose]
	return h, ok
}

// resolve finds the key of purpose in the first tier holding it, or creates
// it in the first tier that accepts a new key.
func (v *keyVault) resolve(ctx context.Context, purpose Purpose) (KeyHandle, error) {
	log := logger.FromContext(ctx)
	alias := purpose.Alias()

	for _, b := range v.backends {
		key, err := b.Lookup(alias)
		switch {
		case err == nil:
			return &keyHandle{Key: key, purpose: purpose, tier: b.Tier()}, nil
		case errors.Is(err, ErrKeyNotFound), errors.Is(err, ErrTierUnavailable):
			continue
		default:
			// an existing key that cannot be used is never replaced silently
			return nil, fmt.Errorf("lookup %s key in %s tier: %w", purpose, b.Tier(), err)
		}
	}

	for _, b := range v.backends {
		key, err := b.Generate(alias)
		if errors.Is(err, ErrTierUnavailable) {
			log.Warn().
				Str("func", "keyVault.resolve").
				Str("purpose", string(purpose)).
				Stringer("tier", b.Tier()).
				Msg("key tier unavailable, falling back")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("generate %s key in %s tier: %w", purpose, b.Tier(), err)
		}

		v.logger.Info().
			Str("purpose", string(purpose)).
			Stringer("tier", b.Tier()).
			Msg("vault key created")
		return &keyHandle{Key: key, purpose: purpose, tier: b.Tier()}, nil
	}

	return nil, fmt.Errorf("no tier accepted the %s key: %w", purpose, ErrTierUnavailable)
}

func (v *keyVault) Wrap(handle KeyHandle, plaintext []byte) (string, error) {
	defer crypto.Wipe(plaintext)

	blob, err := handle.Encrypt(plaintext)
	if err != nil {
		return "", fmt.Errorf("wrap with %s key: %w", handle.Purpose(), err)
	}

	return base64.StdEncoding.EncodeToString(blob), nil
}

func (v *keyVault) Unwrap(handle KeyHandle, blob string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed wrapped secret: %w", ErrDecryption, err)
	}

	plaintext, err := handle.Decrypt(raw)
	if err != nil {
		if errors.Is(err, ErrDecryption) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return plaintext, nil
}

func (v *keyVault) GetDatabasePassphrase(ctx context.Context) ([]byte, error) {
	v.passphraseMu.Lock()
	defer v.passphraseMu.Unlock()

	handle, err := v.GetOrCreateKey(ctx, PurposePassphraseWrapping)
	if err != nil {
		return nil, err
	}

	wrapped, err := v.prefs.Get(ctx, prefDatabasePassphrase)
	if err == nil {
		return v.Unwrap(handle, string(wrapped))
	}
	if !errors.Is(err, store.ErrPreferenceNotFound) {
		return nil, fmt.Errorf("read wrapped passphrase: %w", err)
	}

	entropy, err := crypto.RandomBytes(passphraseEntropyBytes)
	if err != nil {
		return nil, fmt.Errorf("generate passphrase: %w", err)
	}
	passphrase := make([]byte, hex.EncodedLen(len(entropy)))
	hex.Encode(passphrase, entropy)
	crypto.Wipe(entropy)

	// Wrap wipes its input; the caller still needs the plaintext.
	blob, err := v.Wrap(handle, bytes.Clone(passphrase))
	if err != nil {
		crypto.Wipe(passphrase)
		return nil, err
	}

	if err = v.prefs.Set(ctx, prefDatabasePassphrase, []byte(blob)); err != nil {
		crypto.Wipe(passphrase)
		return nil, fmt.Errorf("persist wrapped passphrase: %w", err)
	}
	v.logger.Info().Stringer("tier", handle.Tier()).Msg("database passphrase minted")

	return passphrase, nil
}

func (v *keyVault) ClearAllKeys(ctx context.Context) error {
	var errs []error

	for _, purpose := range Purposes {
		for _, b := range v.backends {
			if err := b.Delete(purpose.Alias()); err != nil {
				errs = append(errs, fmt.Errorf("delete %s key in %s tier: %w", purpose, b.Tier(), err))
			}
		}
	}

	if err := v.prefs.DeletePrefix(ctx, PrefsPrefix); err != nil {
		errs = append(errs, fmt.Errorf("delete wrapped secrets: %w", err))
	}

	v.mu.Lock()
	clear(v.cache)
	v.mu.Unlock()

	v.logger.Warn().Msg("all vault keys cleared")

	return errors.Join(errs...)
}
