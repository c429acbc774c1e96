// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backup implements the export bundle format:
//
//	salt (32 bytes) ‖ iv (12 bytes) ‖ AES-256-GCM ciphertext ‖ tag (16 bytes)
//
// The key is derived from the export password with PBKDF2-HMAC-SHA256. The
// bundle carries no version header.
package backup

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
)

const (
	SaltSize   = 32
	IVSize     = crypto.NonceSize
	KeySize    = crypto.KeySize
	Iterations = 100_000
)

type codec struct {
	logger *logger.Logger
}

// NewCodec returns the bundle codec.
func NewCodec(log *logger.Logger) Codec {
	return &codec{logger: log.GetChildLogger("backup")}
}

func (c *codec) Encrypt(data, password []byte) ([]byte, error) {
	defer crypto.Wipe(password)

	salt, err := crypto.RandomBytes(SaltSize)
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	iv, err := crypto.RandomBytes(IVSize)
	if err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	key := crypto.DeriveKey(password, salt, Iterations, KeySize)
	defer crypto.Wipe(key)

	sealed, err := crypto.SealWithNonce(key, iv, data)
	if err != nil {
		return nil, fmt.Errorf("encrypt bundle: %w", err)
	}

	bundle := make([]byte, 0, SaltSize+IVSize+len(sealed))
	bundle = append(bundle, salt...)
	bundle = append(bundle, iv...)
	bundle = append(bundle, sealed...)

	c.logger.Debug().Int("size", len(bundle)).Msg("bundle encrypted")
	return bundle, nil
}

func (c *codec) Decrypt(bundle, password []byte) ([]byte, error) {
	defer crypto.Wipe(password)

	if len(bundle) <= SaltSize+IVSize {
		return nil, ErrFormat
	}

	salt := bundle[:SaltSize]
	iv := bundle[SaltSize : SaltSize+IVSize]
	sealed := bundle[SaltSize+IVSize:]

	key := crypto.DeriveKey(password, salt, Iterations, KeySize)
	defer crypto.Wipe(key)

	data, err := crypto.OpenWithNonce(key, iv, sealed)
	if errors.Is(err, crypto.ErrDecryption) || errors.Is(err, crypto.ErrCiphertextTooShort) {
		c.logger.Warn().Msg("bundle failed authentication")
		return nil, ErrAuthenticationFailure
	}
	if err != nil {
		return nil, fmt.Errorf("decrypt bundle: %w", err)
	}

	return data, nil
}
