package credential

// Unexported preference keys exposed to the external credential_test package.
const (
	PrefPin              = prefPin
	PrefPinEnabled       = prefPinEnabled
	PrefBiometricEnabled = prefBiometricEnabled
	PrefAutoLockMinutes  = prefAutoLockMinutes
)
