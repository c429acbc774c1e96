// Package storetest provides a migrated in-memory preferences store for
// tests of packages that persist through [store.Preferences].
package storetest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/store"
	"github.com/MKhiriev/go-persona-keeper/migrations"
)

// NewPreferences returns a fresh preferences store closed on test cleanup.
func NewPreferences(t testing.TB) store.Preferences {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migrations.MigratePrefs(context.Background(), conn))

	return store.NewPreferences(store.NewDB(conn, logger.Nop()))
}
