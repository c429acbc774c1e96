// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package keyvault

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
)

const (
	deviceSaltFile   = "device.salt"
	deviceSaltLength = 32
	deviceKeyIters   = 256000
	keyFileExt       = ".key"
)

// fileBackend is the trusted tier: every key is a file holding the AES key
// sealed under a device key. The device key is PBKDF2-HMAC-SHA512 over the
// machine identity and a per-installation salt, so key files copied to
// another machine do not open.
type fileBackend struct {
	dir        string
	entropy    func() []byte
	iterations int
	logger     *logger.Logger

	mu        sync.Mutex
	deviceKey *memguard.Enclave
}

// NewFileBackend returns the trusted-tier backend rooted at dir.
func NewFileBackend(dir string, log *logger.Logger) Backend {
	return &fileBackend{
		dir:        dir,
		entropy:    machineEntropy,
		iterations: deviceKeyIters,
		logger:     log,
	}
}

func (b *fileBackend) Tier() Tier { return TierTrusted }

func (b *fileBackend) Lookup(alias string) (Key, error) {
	sealed, err := os.ReadFile(b.keyPath(alias))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	raw, err := b.withDeviceKey(func(dk []byte) ([]byte, error) {
		return crypto.Open(dk, sealed)
	})
	if err != nil {
		b.logger.Err(err).Str("func", "fileBackend.Lookup").Str("alias", alias).Msg("key file does not open on this device")
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return newEnclaveKey(raw), nil
}

func (b *fileBackend) Generate(alias string) (Key, error) {
	raw, err := crypto.RandomBytes(crypto.KeySize)
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}

	sealed, err := b.withDeviceKey(func(dk []byte) ([]byte, error) {
		return crypto.Seal(dk, raw)
	})
	if err != nil {
		crypto.Wipe(raw)
		return nil, err
	}

	if err = writeFileExclusive(b.keyPath(alias), sealed); err != nil {
		crypto.Wipe(raw)
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("key file %q: %w", alias, ErrKeyExists)
		}
		return nil, err
	}
	b.logger.Debug().Str("func", "fileBackend.Generate").Str("alias", alias).Msg("trusted key created")

	return newEnclaveKey(raw), nil
}

func (b *fileBackend) Delete(alias string) error {
	if err := os.Remove(b.keyPath(alias)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove key file: %w", err)
	}
	return nil
}

func (b *fileBackend) keyPath(alias string) string {
	return filepath.Join(b.dir, alias+keyFileExt)
}

// withDeviceKey runs fn with the device key opened in a locked buffer.
func (b *fileBackend) withDeviceKey(fn func(dk []byte) ([]byte, error)) ([]byte, error) {
	enclave, err := b.loadDeviceKey()
	if err != nil {
		return nil, err
	}

	buf, err := enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open device key enclave: %w", err)
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}

func (b *fileBackend) loadDeviceKey() (*memguard.Enclave, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.deviceKey != nil {
		return b.deviceKey, nil
	}

	if err := os.MkdirAll(b.dir, 0o700); err != nil {
		return nil, fmt.Errorf("create key dir: %w", err)
	}

	salt, err := b.loadOrCreateSalt()
	if err != nil {
		return nil, err
	}

	entropy := b.entropy()
	key := pbkdf2.Key(entropy, salt, b.iterations, crypto.KeySize, sha512.New)
	crypto.Wipe(entropy)

	b.deviceKey = memguard.NewEnclave(key)
	return b.deviceKey, nil
}

func (b *fileBackend) loadOrCreateSalt() ([]byte, error) {
	path := filepath.Join(b.dir, deviceSaltFile)

	salt, err := os.ReadFile(path)
	if err == nil && len(salt) == deviceSaltLength {
		return salt, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read device salt: %w", err)
	}
	if err == nil {
		// a salt of the wrong size would make every key file unreadable
		return nil, fmt.Errorf("device salt has %d bytes, want %d", len(salt), deviceSaltLength)
	}

	salt, err = crypto.RandomBytes(deviceSaltLength)
	if err != nil {
		return nil, fmt.Errorf("generate device salt: %w", err)
	}
	if err = writeFileExclusive(path, salt); errors.Is(err, fs.ErrExist) {
		// created concurrently; the stored salt wins
		return b.loadOrCreateSalt()
	}
	if err != nil {
		return nil, err
	}
	b.logger.Info().Str("func", "fileBackend.loadOrCreateSalt").Msg("device salt created")

	return salt, nil
}

// machineEntropy gathers identifiers that stay stable across reboots of the
// same installation.
func machineEntropy() []byte {
	parts := make([]string, 0, 4)
	for _, p := range []string{"/etc/machine-id", "/var/lib/dbus/machine-id"} {
		if id, err := os.ReadFile(p); err == nil {
			if s := strings.TrimSpace(string(id)); s != "" {
				parts = append(parts, s)
			}
		}
	}
	parts = append(parts, runtime.GOOS, runtime.GOARCH)

	return []byte(strings.Join(parts, ":"))
}

// writeFileExclusive publishes data at path in one step and fails with
// fs.ErrExist when path already exists.
func writeFileExclusive(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Link(tmp.Name(), path); err != nil {
		return fmt.Errorf("publish %s: %w", filepath.Base(path), err)
	}

	return nil
}
