// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the alias-forwarding API used to hand out
// throwaway email addresses for generated identities.
//
// Transport failures are reported as values of [FetchAliasesResult] rather
// than errors, so callers match on the variant.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AliasClient lists the user's forwarding aliases.
type AliasClient interface {
	FetchAliases(ctx context.Context) FetchAliasesResult
}
