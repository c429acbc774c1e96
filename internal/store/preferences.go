package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
)

// sqlPreferences is the SQLite-backed implementation of [Preferences].
type sqlPreferences struct {
	*DB
}

// NewPreferences constructs a [Preferences] over a migrated preferences
// database.
func NewPreferences(db *DB) Preferences {
	return &sqlPreferences{DB: db}
}

func (p *sqlPreferences) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.QueryRowContext(ctx, getPreference, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPreferenceNotFound
	}
	if err != nil {
		p.logger.Err(err).Str("func", "sqlPreferences.Get").Str("key", key).Msg("failed to read preference")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (p *sqlPreferences) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	if _, err := p.ExecContext(ctx, upsertPreference, key, value); err != nil {
		p.logger.Err(err).Str("func", "sqlPreferences.Set").Str("key", key).Msg("failed to write preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (p *sqlPreferences) SetMany(ctx context.Context, values map[string][]byte) error {
	tx, err := p.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// deterministic statement order
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := values[key]
		if value == nil {
			_, err = tx.ExecContext(ctx, deletePreference, key)
		} else {
			_, err = tx.ExecContext(ctx, upsertPreference, key, value)
		}
		if err != nil {
			p.logger.Err(err).Str("func", "sqlPreferences.SetMany").Str("key", key).Msg("failed to write preference")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (p *sqlPreferences) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 1 {
		if _, err := p.ExecContext(ctx, deletePreference, keys[0]); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	}

	values := make(map[string][]byte, len(keys))
	for _, k := range keys {
		values[k] = nil
	}
	return p.SetMany(ctx, values)
}

func (p *sqlPreferences) DeletePrefix(ctx context.Context, prefix string) error {
	if _, err := p.ExecContext(ctx, deletePreferencePrefix, len(prefix), prefix); err != nil {
		p.logger.Err(err).Str("func", "sqlPreferences.DeletePrefix").Str("prefix", prefix).Msg("failed to delete preferences")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
