package validators

import (
	"context"
	"net/mail"
	"time"

	"github.com/MKhiriev/go-persona-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the record identifier. Only existing records carry one.
	FieldID = "id"

	// FieldName requires at least one of first and last name.
	FieldName = "name"

	// FieldEmail targets the optional e-mail address.
	FieldEmail = "email"

	// FieldDateOfBirth targets the optional YYYY-MM-DD date of birth.
	FieldDateOfBirth = "date_of_birth"

	// FieldPhone targets the optional phone number.
	FieldPhone = "phone"

	// FieldLength caps every free-text field at MaxFieldLength bytes.
	FieldLength = "length"
)

// MaxFieldLength is the longest accepted value of any identity field.
const MaxFieldLength = 512

const dateLayout = "2006-01-02"

// IdentityValidator implements [Validator] for models.Identity.
type IdentityValidator struct {
	now func() time.Time
}

// NewIdentityValidator returns the identity record validator.
func NewIdentityValidator() Validator {
	return &IdentityValidator{now: time.Now}
}

// Validate accepts models.Identity and *models.Identity. Without fields it
// checks name, email, date of birth, phone and length.
func (v *IdentityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Identity:
		return v.validateIdentity(ctx, value, fields...)
	case *models.Identity:
		return v.validateIdentity(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *IdentityValidator) validateIdentity(_ context.Context, identity models.Identity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldDateOfBirth, FieldPhone, FieldLength}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if identity.ID == "" {
				return ErrInvalidID
			}
		case FieldName:
			if identity.FirstName == "" && identity.LastName == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if identity.Email == "" {
				continue
			}
			addr, err := mail.ParseAddress(identity.Email)
			if err != nil || addr.Address != identity.Email {
				return ErrInvalidEmail
			}
		case FieldDateOfBirth:
			if identity.DateOfBirth == "" {
				continue
			}
			dob, err := time.Parse(dateLayout, identity.DateOfBirth)
			if err != nil || dob.After(v.now()) {
				return ErrInvalidDateOfBirth
			}
		case FieldPhone:
			if !isValidPhone(identity.Phone) {
				return ErrInvalidPhone
			}
		case FieldLength:
			if !fieldsWithinLimit(identity) {
				return ErrFieldTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidPhone allows an optional leading '+', digits, spaces, dashes,
// dots and parentheses, with at least one digit.
func isValidPhone(phone string) bool {
	if phone == "" {
		return true
	}

	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ', r == '-', r == '.', r == '(', r == ')':
		default:
			return false
		}
	}
	return digits > 0
}

func fieldsWithinLimit(identity models.Identity) bool {
	for _, s := range []string{
		identity.FirstName, identity.LastName, identity.Street, identity.City,
		identity.Region, identity.PostalCode, identity.Country, identity.Phone,
		identity.Email, identity.Notes,
	} {
		if len(s) > MaxFieldLength {
			return false
		}
	}
	return true
}
