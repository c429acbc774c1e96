package credential

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_mock.go -package=mock

// Store persists the PIN credential, the biometric flag and the auto-lock
// timeout.
type Store interface {
	// SetPin encrypts pin under the field-encryption key and enables PIN
	// unlock. pin is wiped on every path.
	SetPin(ctx context.Context, pin []byte) error

	// VerifyPin decrypts the stored PIN and compares it with candidate in
	// constant time. candidate is wiped on every path.
	VerifyPin(ctx context.Context, candidate []byte) (bool, error)

	HasPin(ctx context.Context) (bool, error)
	ClearPin(ctx context.Context) error

	BiometricEnabled() bool
	SetBiometricEnabled(ctx context.Context, enabled bool) error
	// WatchBiometricEnabled streams the current flag and every change.
	WatchBiometricEnabled() (<-chan bool, func())

	// AutoLockMinutes returns the session timeout; 0 means never.
	AutoLockMinutes() int
	SetAutoLockMinutes(ctx context.Context, minutes int) error
	WatchAutoLockMinutes() (<-chan int, func())
}
