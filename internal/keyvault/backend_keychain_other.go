//go:build !darwin

package keyvault

import "github.com/MKhiriev/go-persona-keeper/internal/logger"

// unavailableBackend stands in for the isolated tier on platforms without a
// supported OS keystore.
type unavailableBackend struct{}

// NewKeychainBackend returns the isolated-tier backend. No OS keystore is
// supported on this platform, so every call reports ErrTierUnavailable.
func NewKeychainBackend(_ *logger.Logger) Backend {
	return unavailableBackend{}
}

func (unavailableBackend) Tier() Tier                   { return TierIsolated }
func (unavailableBackend) Lookup(string) (Key, error)   { return nil, ErrTierUnavailable }
func (unavailableBackend) Generate(string) (Key, error) { return nil, ErrTierUnavailable }
func (unavailableBackend) Delete(string) error          { return nil }
