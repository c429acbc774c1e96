package client

import "errors"

var (
	// ErrBiometricUnavailable is returned when enabling biometric unlock on a
	// device without usable biometric hardware.
	ErrBiometricUnavailable = errors.New("biometric unlock is not available on this device")

	// ErrAliasFetch is returned when the alias API answered with an error.
	ErrAliasFetch = errors.New("error fetching aliases")
)
