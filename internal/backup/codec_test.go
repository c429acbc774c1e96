package backup

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-persona-keeper/internal/logger"
)

func newTestCodec() Codec {
	return NewCodec(logger.Nop())
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newTestCodec()

	tests := []struct {
		name     string
		data     []byte
		password string
	}{
		{name: "empty payload", data: []byte{}, password: "pw"},
		{name: "text", data: []byte("SQLite format 3\x00 identities"), password: "correct horse"},
		{name: "binary", data: bytes.Repeat([]byte{0x00, 0xff, 0x7f}, 4096), password: "ünïcödé"},
		{name: "empty password", data: []byte("data"), password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, err := c.Encrypt(tt.data, []byte(tt.password))
			require.NoError(t, err)
			assert.Len(t, bundle, SaltSize+IVSize+len(tt.data)+16)

			got, err := c.Decrypt(bundle, []byte(tt.password))
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestCodec_FreshSaltAndIV(t *testing.T) {
	c := newTestCodec()

	a, err := c.Encrypt([]byte("same"), []byte("pw"))
	require.NoError(t, err)
	b, err := c.Encrypt([]byte("same"), []byte("pw"))
	require.NoError(t, err)

	assert.NotEqual(t, a[:SaltSize], b[:SaltSize])
	assert.NotEqual(t, a[SaltSize:SaltSize+IVSize], b[SaltSize:SaltSize+IVSize])
}

func TestCodec_WrongPassword(t *testing.T) {
	c := newTestCodec()

	bundle, err := c.Encrypt([]byte("records"), []byte("correct"))
	require.NoError(t, err)

	_, err = c.Decrypt(bundle, []byte("wrong"))
	assert.ErrorIs(t, err, ErrAuthenticationFailure)
}

func TestCodec_BitFlipDetected(t *testing.T) {
	c := newTestCodec()
	data := []byte("a snapshot of the identities database")

	bundle, err := c.Encrypt(data, []byte("pw"))
	require.NoError(t, err)

	positions := []int{
		0,                      // salt
		SaltSize + 3,           // iv
		SaltSize + IVSize,      // first ciphertext byte
		SaltSize + IVSize + 10, // ciphertext
		len(bundle) - 1,        // tag
	}
	for _, pos := range positions {
		for bit := range 8 {
			tampered := bytes.Clone(bundle)
			tampered[pos] ^= 1 << bit

			got, err := c.Decrypt(tampered, []byte("pw"))
			assert.ErrorIs(t, err, ErrAuthenticationFailure, "byte %d bit %d", pos, bit)
			assert.Nil(t, got)
		}
	}
}

func TestCodec_TooShort(t *testing.T) {
	c := newTestCodec()

	for _, n := range []int{0, 1, SaltSize, SaltSize + IVSize} {
		_, err := c.Decrypt(make([]byte, n), []byte("pw"))
		assert.ErrorIs(t, err, ErrFormat, "length %d", n)
	}

	_, err := c.Decrypt(make([]byte, SaltSize+IVSize+1), []byte("pw"))
	assert.ErrorIs(t, err, ErrAuthenticationFailure)
}

func TestCodec_WipesPassword(t *testing.T) {
	c := newTestCodec()

	pw := []byte("export-secret")
	bundle, err := c.Encrypt([]byte("data"), pw)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, len(pw)), pw)

	pw = []byte("export-secret")
	_, err = c.Decrypt(bundle, pw)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, len(pw)), pw)

	pw = []byte("export-secret")
	_, err = c.Decrypt([]byte("short"), pw)
	assert.ErrorIs(t, err, ErrFormat)
	assert.Equal(t, make([]byte, len(pw)), pw)
}
