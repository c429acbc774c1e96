package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/MKhiriev/go-persona-keeper/internal/config"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/migrations"
)

// NewConnectPreferences opens the preferences database (pure-Go SQLite) and
// migrates its schema.
func NewConnectPreferences(ctx context.Context, cfg config.Prefs, log *logger.Logger) (*DB, error) {
	if err := ensureDir(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectPreferences").Msg("error creating database directory")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	conn, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPreferences").Msg("error connecting database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	// one writer keeps SetMany and single-key upserts serialized
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectPreferences").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	if err = migrations.MigratePrefs(ctx, conn); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectPreferences").Msg("error migrating database")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectPreferences").Msg("connected to preferences database successfully")

	return NewDB(conn, log), nil
}

func ensureDir(dbFile string) error {
	dir := filepath.Dir(dbFile)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}
	return nil
}
