// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credential stores the user's unlock credentials. The PIN is kept
// in reversible encrypted form and verified by decrypt-and-compare with the
// same key and primitive used to store it.
package credential

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-persona-keeper/internal/config"
	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
	"github.com/MKhiriev/go-persona-keeper/internal/keyvault"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/store"
	"github.com/MKhiriev/go-persona-keeper/internal/utils"
)

const (
	// Prefix is shared by every preference owned by the credential store.
	Prefix = "credential."

	prefPin              = Prefix + "pin"
	prefPinEnabled       = Prefix + "pin_enabled"
	prefBiometricEnabled = Prefix + "biometric_enabled"
	prefAutoLockMinutes  = Prefix + "auto_lock_minutes"

	MinPinLength = 4
	MaxPinLength = 8
)

type credentialStore struct {
	prefs  store.Preferences
	vault  keyvault.KeyVault
	logger *logger.Logger

	biometric *utils.Observable[bool]
	autoLock  *utils.Observable[int]
}

// NewStore loads the persisted flags from prefs. cfg supplies the auto-lock
// timeout used until the user picks one.
func NewStore(ctx context.Context, prefs store.Preferences, vault keyvault.KeyVault, cfg config.Security, log *logger.Logger) (Store, error) {
	s := &credentialStore{
		prefs:  prefs,
		vault:  vault,
		logger: log.GetChildLogger("credential"),
	}

	biometric, err := s.readBool(ctx, prefBiometricEnabled)
	if err != nil {
		return nil, err
	}
	minutes, err := s.readInt(ctx, prefAutoLockMinutes, cfg.DefaultAutoLockMinutes)
	if err != nil {
		return nil, err
	}

	s.biometric = utils.NewObservable(biometric)
	s.autoLock = utils.NewObservable(minutes)

	return s, nil
}

// ValidatePin reports whether pin is 4 to 8 ASCII digits.
func ValidatePin(pin []byte) error {
	if len(pin) < MinPinLength || len(pin) > MaxPinLength {
		return ErrInvalidPinFormat
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return ErrInvalidPinFormat
		}
	}
	return nil
}

func (s *credentialStore) SetPin(ctx context.Context, pin []byte) error {
	defer crypto.Wipe(pin)

	if err := ValidatePin(pin); err != nil {
		return err
	}

	handle, err := s.vault.GetOrCreateKey(ctx, keyvault.PurposeFieldEncryption)
	if err != nil {
		return fmt.Errorf("get field key: %w", err)
	}

	blob, err := s.vault.Wrap(handle, pin)
	if err != nil {
		return fmt.Errorf("encrypt pin: %w", err)
	}

	err = s.prefs.SetMany(ctx, map[string][]byte{
		prefPin:        []byte(blob),
		prefPinEnabled: []byte(strconv.FormatBool(true)),
	})
	if err != nil {
		return fmt.Errorf("persist pin: %w", err)
	}
	s.logger.Info().Msg("pin set")

	return nil
}

func (s *credentialStore) VerifyPin(ctx context.Context, candidate []byte) (bool, error) {
	defer crypto.Wipe(candidate)

	blob, err := s.prefs.Get(ctx, prefPin)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return false, ErrPinNotSet
	}
	if err != nil {
		return false, fmt.Errorf("read pin: %w", err)
	}

	handle, err := s.vault.GetOrCreateKey(ctx, keyvault.PurposeFieldEncryption)
	if err != nil {
		return false, fmt.Errorf("get field key: %w", err)
	}

	stored, err := s.vault.Unwrap(handle, string(blob))
	if err != nil {
		return false, fmt.Errorf("decrypt pin: %w", err)
	}
	defer crypto.Wipe(stored)

	return subtle.ConstantTimeCompare(stored, candidate) == 1, nil
}

func (s *credentialStore) HasPin(ctx context.Context) (bool, error) {
	enabled, err := s.readBool(ctx, prefPinEnabled)
	if err != nil || !enabled {
		return false, err
	}

	_, err = s.prefs.Get(ctx, prefPin)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read pin: %w", err)
	}

	return true, nil
}

func (s *credentialStore) ClearPin(ctx context.Context) error {
	if err := s.prefs.Delete(ctx, prefPin, prefPinEnabled); err != nil {
		return fmt.Errorf("clear pin: %w", err)
	}
	s.logger.Info().Msg("pin cleared")
	return nil
}

func (s *credentialStore) BiometricEnabled() bool {
	return s.biometric.Get()
}

func (s *credentialStore) SetBiometricEnabled(ctx context.Context, enabled bool) error {
	if err := s.prefs.Set(ctx, prefBiometricEnabled, []byte(strconv.FormatBool(enabled))); err != nil {
		return fmt.Errorf("persist biometric flag: %w", err)
	}
	s.biometric.Set(enabled)
	s.logger.Info().Bool("enabled", enabled).Msg("biometric unlock toggled")
	return nil
}

func (s *credentialStore) WatchBiometricEnabled() (<-chan bool, func()) {
	return s.biometric.Subscribe()
}

func (s *credentialStore) AutoLockMinutes() int {
	return s.autoLock.Get()
}

func (s *credentialStore) SetAutoLockMinutes(ctx context.Context, minutes int) error {
	if minutes < 0 {
		return ErrInvalidAutoLock
	}
	if err := s.prefs.Set(ctx, prefAutoLockMinutes, []byte(strconv.Itoa(minutes))); err != nil {
		return fmt.Errorf("persist auto-lock minutes: %w", err)
	}
	s.autoLock.Set(minutes)
	s.logger.Info().Int("minutes", minutes).Msg("auto-lock timeout changed")
	return nil
}

func (s *credentialStore) WatchAutoLockMinutes() (<-chan int, func()) {
	return s.autoLock.Subscribe()
}

func (s *credentialStore) readBool(ctx context.Context, key string) (bool, error) {
	raw, err := s.prefs.Get(ctx, key)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}

	v, err := strconv.ParseBool(string(raw))
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func (s *credentialStore) readInt(ctx context.Context, key string, def int) (int, error) {
	raw, err := s.prefs.Get(ctx, key)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return def, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", key, err)
	}

	v, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}
