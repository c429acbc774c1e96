// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks identity records before they reach the record
// store. Validation failures are reported as the sentinel errors in
// errors.go so the terminal surface can show a field-specific message.
package validators

import "context"

// Validator checks a value. When fields are given, only those fields are
// validated; otherwise the whole value is.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
