package keyvault

import (
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
)

// enclaveKey keeps AES key bytes in a memguard enclave, decrypting them
// into a locked buffer only for the duration of one operation.
type enclaveKey struct {
	enclave *memguard.Enclave
}

// newEnclaveKey moves raw into an enclave. raw is wiped.
func newEnclaveKey(raw []byte) *enclaveKey {
	return &enclaveKey{enclave: memguard.NewEnclave(raw)}
}

func (k *enclaveKey) Encrypt(plaintext []byte) ([]byte, error) {
	buf, err := k.enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open key enclave: %w", err)
	}
	defer buf.Destroy()

	return crypto.Seal(buf.Bytes(), plaintext)
}

func (k *enclaveKey) Decrypt(ciphertext []byte) ([]byte, error) {
	buf, err := k.enclave.Open()
	if err != nil {
		return nil, fmt.Errorf("open key enclave: %w", err)
	}
	defer buf.Destroy()

	plaintext, err := crypto.Open(buf.Bytes(), ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return plaintext, nil
}

// keyHandle binds a backend key to its purpose and tier.
type keyHandle struct {
	Key
	purpose Purpose
	tier    Tier
}

func (h *keyHandle) Purpose() Purpose { return h.purpose }
func (h *keyHandle) Tier() Tier       { return h.tier }
