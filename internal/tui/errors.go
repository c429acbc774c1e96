// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-persona-keeper/internal/credential"
	"github.com/MKhiriev/go-persona-keeper/internal/service"
	"github.com/MKhiriev/go-persona-keeper/internal/store"
	"github.com/MKhiriev/go-persona-keeper/internal/validators"
)

var (
	// ErrUserQuit is returned when the user leaves a program before it completed.
	ErrUserQuit = errors.New("user quit")

	// ErrPinMismatch is shown when the PIN confirmation differs.
	ErrPinMismatch = errors.New("PINs do not match")
)

var validationMessages = []struct {
	err error
	msg string
}{
	{validators.ErrEmptyName, "First or last name is required."},
	{validators.ErrInvalidEmail, "Email address is not valid."},
	{validators.ErrInvalidDateOfBirth, "Date of birth must be YYYY-MM-DD and not in the future."},
	{validators.ErrInvalidPhone, "Phone number may contain digits, spaces and + - . ( ) only."},
	{validators.ErrFieldTooLong, "A field is too long."},
}

// humanizeError maps known errors to a message for the status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, credential.ErrInvalidPinFormat):
		return "PIN must be 4 to 8 digits."
	case errors.Is(err, ErrPinMismatch):
		return "PINs do not match."
	case errors.Is(err, store.ErrRecordNotFound):
		return "Record no longer exists."
	case errors.Is(err, store.ErrStoreClosed):
		return "The app was locked."
	case errors.Is(err, service.ErrInvalidDataProvided):
		for _, v := range validationMessages {
			if errors.Is(err, v.err) {
				return v.msg
			}
		}
		return "Invalid data."
	}

	return err.Error()
}
