package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/migrations"
)

// newTestPreferences returns a Preferences backed by a migrated in-memory
// SQLite database.
func newTestPreferences(t *testing.T) Preferences {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, migrations.MigratePrefs(context.Background(), conn))

	return NewPreferences(NewDB(conn, logger.Nop()))
}

// ── Get / Set ────────────────────────────────────────────────────────────────

func TestPreferences_GetMissing(t *testing.T) {
	prefs := newTestPreferences(t)

	_, err := prefs.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestPreferences_SetGetOverwrite(t *testing.T) {
	ctx := context.Background()
	prefs := newTestPreferences(t)

	require.NoError(t, prefs.Set(ctx, "session.start", []byte("100")))
	got, err := prefs.Get(ctx, "session.start")
	require.NoError(t, err)
	assert.Equal(t, []byte("100"), got)

	require.NoError(t, prefs.Set(ctx, "session.start", []byte("200")))
	got, err = prefs.Get(ctx, "session.start")
	require.NoError(t, err)
	assert.Equal(t, []byte("200"), got)
}

func TestPreferences_SetEmptyValue(t *testing.T) {
	ctx := context.Background()
	prefs := newTestPreferences(t)

	require.NoError(t, prefs.Set(ctx, "k", nil))
	got, err := prefs.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ── SetMany ──────────────────────────────────────────────────────────────────

func TestPreferences_SetManyWritesAndDeletes(t *testing.T) {
	ctx := context.Background()
	prefs := newTestPreferences(t)
	require.NoError(t, prefs.Set(ctx, "lockout.until", []byte("1")))

	err := prefs.SetMany(ctx, map[string][]byte{
		"lockout.failed": []byte("3"),
		"lockout.until":  nil,
	})
	require.NoError(t, err)

	got, err := prefs.Get(ctx, "lockout.failed")
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), got)

	_, err = prefs.Get(ctx, "lockout.until")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestPreferences_SetManyRollsBackOnFailure(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO preferences`).
		WithArgs("a", []byte("1")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO preferences`).
		WithArgs("b", []byte("2")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	prefs := NewPreferences(NewDB(conn, logger.Nop()))
	err = prefs.SetMany(context.Background(), map[string][]byte{"a": []byte("1"), "b": []byte("2")})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferences_SetManyBeginFails(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin().WillReturnError(errors.New("busy"))

	prefs := NewPreferences(NewDB(conn, logger.Nop()))
	err = prefs.SetMany(context.Background(), map[string][]byte{"a": []byte("1")})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── Delete / DeletePrefix ────────────────────────────────────────────────────

func TestPreferences_Delete(t *testing.T) {
	ctx := context.Background()
	prefs := newTestPreferences(t)
	require.NoError(t, prefs.SetMany(ctx, map[string][]byte{
		"a": []byte("1"), "b": []byte("2"), "c": []byte("3"),
	}))

	require.NoError(t, prefs.Delete(ctx, "a"))
	require.NoError(t, prefs.Delete(ctx, "b", "missing"))

	_, err := prefs.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
	_, err = prefs.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
	_, err = prefs.Get(ctx, "c")
	assert.NoError(t, err)
}

func TestPreferences_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	prefs := newTestPreferences(t)
	require.NoError(t, prefs.SetMany(ctx, map[string][]byte{
		"vault.db_passphrase": []byte("x"),
		"vault.other":         []byte("y"),
		"vaultish":            []byte("z"),
		"credential.pin":      []byte("p"),
	}))

	require.NoError(t, prefs.DeletePrefix(ctx, "vault."))

	for _, k := range []string{"vault.db_passphrase", "vault.other"} {
		_, err := prefs.Get(ctx, k)
		assert.ErrorIs(t, err, ErrPreferenceNotFound, k)
	}
	for _, k := range []string{"vaultish", "credential.pin"} {
		_, err := prefs.Get(ctx, k)
		assert.NoError(t, err, k)
	}
}

func TestPreferences_DeletePrefixIsLiteral(t *testing.T) {
	ctx := context.Background()
	prefs := newTestPreferences(t)
	require.NoError(t, prefs.SetMany(ctx, map[string][]byte{
		"a_b.x": []byte("1"),
		"aXb.y": []byte("2"),
		"a%.z":  []byte("3"),
	}))

	require.NoError(t, prefs.DeletePrefix(ctx, "a_b."))

	_, err := prefs.Get(ctx, "a_b.x")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
	_, err = prefs.Get(ctx, "aXb.y")
	assert.NoError(t, err)

	require.NoError(t, prefs.DeletePrefix(ctx, "a%"))
	_, err = prefs.Get(ctx, "a%.z")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)
	_, err = prefs.Get(ctx, "aXb.y")
	assert.NoError(t, err)
}

func TestPreferences_DeletePrefixExecError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectExec(`DELETE FROM preferences WHERE substr\(key, 1, \?\) = \?`).
		WithArgs(6, "vault.").
		WillReturnError(errors.New("readonly"))

	prefs := NewPreferences(NewDB(conn, logger.Nop()))
	err = prefs.DeletePrefix(context.Background(), "vault.")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
