package store

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// xorSealer is a reversible test sealer that also tags its output.
type xorSealer struct {
	failDecrypt bool
}

var errSealer = errors.New("sealer failure")

func (x xorSealer) Encrypt(pt []byte) ([]byte, error) {
	out := append([]byte("sealed:"), pt...)
	for i := len("sealed:"); i < len(out); i++ {
		out[i] ^= 0x5a
	}
	return out, nil
}

func (x xorSealer) Decrypt(ct []byte) ([]byte, error) {
	if x.failDecrypt || !bytes.HasPrefix(ct, []byte("sealed:")) {
		return nil, errSealer
	}
	out := bytes.Clone(ct[len("sealed:"):])
	for i := range out {
		out[i] ^= 0x5a
	}
	return out, nil
}

func TestSealedPreferences_RoundTripStoresCiphertext(t *testing.T) {
	ctx := context.Background()
	raw := newTestPreferences(t)
	sealed := NewSealedPreferences(raw, xorSealer{})

	require.NoError(t, sealed.Set(ctx, "credential.pin_enabled", []byte("true")))

	got, err := sealed.Get(ctx, "credential.pin_enabled")
	require.NoError(t, err)
	assert.Equal(t, []byte("true"), got)

	stored, err := raw.Get(ctx, "credential.pin_enabled")
	require.NoError(t, err)
	assert.NotContains(t, string(stored), "true")
}

func TestSealedPreferences_SetManyAndDelete(t *testing.T) {
	ctx := context.Background()
	raw := newTestPreferences(t)
	sealed := NewSealedPreferences(raw, xorSealer{})

	require.NoError(t, sealed.SetMany(ctx, map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}))
	require.NoError(t, sealed.SetMany(ctx, map[string][]byte{"a": nil}))

	_, err := sealed.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	got, err := sealed.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)

	require.NoError(t, sealed.DeletePrefix(ctx, "b"))
	_, err = sealed.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestSealedPreferences_DecryptFailurePropagates(t *testing.T) {
	ctx := context.Background()
	raw := newTestPreferences(t)
	require.NoError(t, raw.Set(ctx, "k", []byte("plain")))

	_, err := NewSealedPreferences(raw, xorSealer{}).Get(ctx, "k")
	assert.ErrorIs(t, err, errSealer)

	require.NoError(t, NewSealedPreferences(raw, xorSealer{}).Set(ctx, "k", []byte("v")))
	_, err = NewSealedPreferences(raw, xorSealer{failDecrypt: true}).Get(ctx, "k")
	assert.ErrorIs(t, err, errSealer)
}
