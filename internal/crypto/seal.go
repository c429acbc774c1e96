// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the small set of primitives shared by the key vault
// and the backup codec: AES-256-GCM sealing, CSPRNG reads, PBKDF2 key
// derivation and explicit wiping of secret buffers.
//
// Sealed blobs always have the layout nonce (12 bytes) ‖ ciphertext ‖ tag (16 bytes).
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// NonceSize is the GCM nonce length used by Seal.
	NonceSize = 12
	// TagSize is the GCM authentication tag length.
	TagSize = 16
	// KeySize is the AES-256 key length.
	KeySize = 32
)

// Seal encrypts plaintext with key using AES-GCM and a fresh random nonce.
// The returned blob is nonce ‖ ciphertext ‖ tag.
func Seal(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := RandomBytes(gcm.NonceSize())
	if err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends to nonce, so the blob is nonce ‖ ct ‖ tag.
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// SealWithNonce is Seal with a caller-chosen nonce. The nonce is not part of
// the output.
func SealWithNonce(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("nonce must be %d bytes", gcm.NonceSize())
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Open reverses Seal. It returns ErrCiphertextTooShort for truncated blobs
// and ErrDecryption when the tag does not verify.
func Open(key, blob []byte) ([]byte, error) {
	if len(blob) < NonceSize+TagSize {
		return nil, ErrCiphertextTooShort
	}

	return OpenWithNonce(key, blob[:NonceSize], blob[NonceSize:])
}

// OpenWithNonce decrypts ciphertext ‖ tag produced with the given nonce.
func OpenWithNonce(key, nonce, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() || len(ciphertext) < gcm.Overhead() {
		return nil, ErrCiphertextTooShort
	}

	plaintext, err := gcm.Open(make([]byte, 0, len(ciphertext)-gcm.Overhead()), nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return plaintext, nil
}

// RandomBytes reads n bytes from the OS CSPRNG.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// DeriveKey stretches password with PBKDF2-HMAC-SHA256.
func DeriveKey(password, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New)
}

// Wipe zeroes every given buffer in place.
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		memguard.WipeBytes(b)
	}
}

func newGCM(key []byte) (cipher.AEAD, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
