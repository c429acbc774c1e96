package store

import (
	"context"
	"fmt"
)

// sealedPreferences encrypts every value before it reaches the wrapped
// [Preferences]. Keys stay in clear text.
type sealedPreferences struct {
	next   Preferences
	sealer Sealer
}

// NewSealedPreferences wraps next so that values are stored encrypted under
// sealer.
func NewSealedPreferences(next Preferences, sealer Sealer) Preferences {
	return &sealedPreferences{next: next, sealer: sealer}
}

func (s *sealedPreferences) Get(ctx context.Context, key string) ([]byte, error) {
	sealed, err := s.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	value, err := s.sealer.Decrypt(sealed)
	if err != nil {
		return nil, fmt.Errorf("open preference %q: %w", key, err)
	}

	return value, nil
}

func (s *sealedPreferences) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := s.sealer.Encrypt(value)
	if err != nil {
		return fmt.Errorf("seal preference %q: %w", key, err)
	}

	return s.next.Set(ctx, key, sealed)
}

func (s *sealedPreferences) SetMany(ctx context.Context, values map[string][]byte) error {
	sealed := make(map[string][]byte, len(values))
	for key, value := range values {
		if value == nil {
			sealed[key] = nil
			continue
		}
		ct, err := s.sealer.Encrypt(value)
		if err != nil {
			return fmt.Errorf("seal preference %q: %w", key, err)
		}
		sealed[key] = ct
	}

	return s.next.SetMany(ctx, sealed)
}

func (s *sealedPreferences) Delete(ctx context.Context, keys ...string) error {
	return s.next.Delete(ctx, keys...)
}

func (s *sealedPreferences) DeletePrefix(ctx context.Context, prefix string) error {
	return s.next.DeletePrefix(ctx, prefix)
}
