// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-persona-keeper/models"
)

func validIdentity() models.Identity {
	return models.Identity{
		ID:          "0b5e6f1e-1c55-4a43-9c62-5e4b8a0c1d11",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		City:        "London",
		Phone:       "+44 (20) 7946-0958",
		DateOfBirth: "1815-12-10",
		Email:       "ada@example.com",
	}
}

func newTestValidator() *IdentityValidator {
	return &IdentityValidator{now: func() time.Time {
		return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	}}
}

// ── NewIdentityValidator ─────────────────────────────────────────────────────

func TestNewIdentityValidator(t *testing.T) {
	require.NotNil(t, NewIdentityValidator())
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestValidate_Dispatch(t *testing.T) {
	v := newTestValidator()
	id := validIdentity()

	assert.NoError(t, v.Validate(context.Background(), id))
	assert.NoError(t, v.Validate(context.Background(), &id))
	assert.ErrorIs(t, v.Validate(context.Background(), "identity"), ErrUnsupportedType)
}

func TestValidate_Identity(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Identity)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Identity) {}},
		{name: "only last name", mutate: func(i *models.Identity) { i.FirstName = "" }},
		{name: "no name", mutate: func(i *models.Identity) { i.FirstName, i.LastName = "", "" }, wantErr: ErrEmptyName},
		{name: "empty optional fields", mutate: func(i *models.Identity) { i.Email, i.Phone, i.DateOfBirth = "", "", "" }},
		{name: "bad email", mutate: func(i *models.Identity) { i.Email = "ada-at-example" }, wantErr: ErrInvalidEmail},
		{name: "display name email", mutate: func(i *models.Identity) { i.Email = "Ada <ada@example.com>" }, wantErr: ErrInvalidEmail},
		{name: "bad date", mutate: func(i *models.Identity) { i.DateOfBirth = "10/12/1815" }, wantErr: ErrInvalidDateOfBirth},
		{name: "future date", mutate: func(i *models.Identity) { i.DateOfBirth = "2030-01-01" }, wantErr: ErrInvalidDateOfBirth},
		{name: "phone letters", mutate: func(i *models.Identity) { i.Phone = "call me" }, wantErr: ErrInvalidPhone},
		{name: "phone inner plus", mutate: func(i *models.Identity) { i.Phone = "44+20" }, wantErr: ErrInvalidPhone},
		{name: "phone no digits", mutate: func(i *models.Identity) { i.Phone = "+()" }, wantErr: ErrInvalidPhone},
		{name: "notes too long", mutate: func(i *models.Identity) { i.Notes = strings.Repeat("x", MaxFieldLength+1) }, wantErr: ErrFieldTooLong},
		{name: "id required when scoped", mutate: func(i *models.Identity) { i.ID = "" }, fields: []string{FieldID}, wantErr: ErrInvalidID},
		{name: "scoped fields skip others", mutate: func(i *models.Identity) { i.Email = "bad" }, fields: []string{FieldName}},
		{name: "unknown field", mutate: func(*models.Identity) {}, fields: []string{"nickname"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := validIdentity()
			tt.mutate(&id)

			err := newTestValidator().Validate(context.Background(), id, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
