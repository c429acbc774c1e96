// Package migrations embeds the goose schema migrations of both local
// databases: the secure preferences store and the encrypted record store.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

const (
	prefsDir   = "prefs"
	recordsDir = "records"
)

//go:embed prefs/*.sql records/*.sql
var embedMigrations embed.FS

// errNilDB is returned when a migration is requested on a nil handle.
var errNilDB = errors.New("db is nil")

// MigratePrefs brings the preferences database schema up to date.
func MigratePrefs(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, prefsDir)
}

// MigrateRecords brings the identity record store schema up to date.
func MigrateRecords(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, recordsDir)
}

func migrate(ctx context.Context, db *sql.DB, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
