package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/models"
)

func newTestRecordStore(t *testing.T) (*recordStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return newRecordStore(NewDB(db, logger.Nop())), mock
}

func TestRecordStoreDSN(t *testing.T) {
	key := []byte(strings.Repeat("ab", 32))

	dsn := recordStoreDSN("/data/identities.db", key)

	assert.Equal(t, "/data/identities.db?_pragma_key=x'"+string(key)+"'&_pragma_cipher_page_size=4096", dsn)
}

// ── ExportPlaintext ──────────────────────────────────────────────────────────

func TestRecordStore_ExportPlaintext(t *testing.T) {
	s, mock := newTestRecordStore(t)

	mock.ExpectExec(`ATTACH DATABASE \? AS plaintext KEY ''`).
		WithArgs("/tmp/snapshot.db").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`SELECT sqlcipher_export\('plaintext'\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DETACH DATABASE plaintext`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.ExportPlaintext(context.Background(), "/tmp/snapshot.db"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStore_ExportPlaintextFailsAndDetaches(t *testing.T) {
	s, mock := newTestRecordStore(t)

	mock.ExpectExec(`ATTACH DATABASE`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`sqlcipher_export`).WillReturnError(errors.New("disk full"))
	mock.ExpectExec(`DETACH DATABASE plaintext`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.ExportPlaintext(context.Background(), "/tmp/snapshot.db")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── ImportPlaintext ──────────────────────────────────────────────────────────

func TestRecordStore_ImportPlaintext(t *testing.T) {
	s, mock := newTestRecordStore(t)

	mock.ExpectExec(`ATTACH DATABASE \? AS plaintext KEY ''`).
		WithArgs("/tmp/restore.db").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FROM plaintext.sqlite_master`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM main.identities`).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`INSERT INTO main.identities .* FROM plaintext.identities`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	mock.ExpectExec(`DETACH DATABASE plaintext`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.ImportPlaintext(context.Background(), "/tmp/restore.db"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStore_ImportPlaintextRejectsForeignFile(t *testing.T) {
	s, mock := newTestRecordStore(t)

	mock.ExpectExec(`ATTACH DATABASE`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FROM plaintext.sqlite_master`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DETACH DATABASE plaintext`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.ImportPlaintext(context.Background(), "/tmp/other.db")
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordStore_ImportPlaintextRollsBack(t *testing.T) {
	s, mock := newTestRecordStore(t)

	mock.ExpectExec(`ATTACH DATABASE`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FROM plaintext.sqlite_master`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM main.identities`).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(`INSERT INTO main.identities`).WillReturnError(errors.New("constraint"))
	mock.ExpectRollback()
	mock.ExpectExec(`DETACH DATABASE plaintext`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.ImportPlaintext(context.Background(), "/tmp/restore.db")
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Close ────────────────────────────────────────────────────────────────────

func TestRecordStore_ClosedStoreRejectsCalls(t *testing.T) {
	s, mock := newTestRecordStore(t)
	mock.ExpectClose()

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	ctx := context.Background()
	_, err := s.Identities().Save(ctx, models.Identity{})
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = s.Identities().Get(ctx, "x")
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = s.Identities().List(ctx)
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Identities().Delete(ctx, "x"), ErrStoreClosed)
	assert.ErrorIs(t, s.ExportPlaintext(ctx, "p"), ErrStoreClosed)
	assert.ErrorIs(t, s.ImportPlaintext(ctx, "p"), ErrStoreClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
