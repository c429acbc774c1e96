// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mutecomm/go-sqlcipher/v4"

	"github.com/MKhiriev/go-persona-keeper/internal/config"
	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/migrations"
)

// recordStore is the SQLCipher-backed [RecordStore].
type recordStore struct {
	db         *DB
	identities IdentityRepository
}

// OpenRecordStore opens the encrypted record store at cfg.Path. passphrase is
// the 64-character hex database passphrase; it is used as the raw SQLCipher
// key and wiped before returning.
func OpenRecordStore(ctx context.Context, cfg config.Records, passphrase []byte, log *logger.Logger) (RecordStore, error) {
	defer crypto.Wipe(passphrase)

	if err := ensureDir(cfg.Path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	conn, err := sql.Open("sqlite3", recordStoreDSN(cfg.Path, passphrase))
	if err != nil {
		log.Err(err).Str("func", "OpenRecordStore").Msg("error opening record store")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	// a wrong key only shows up on the first real read
	var tables int
	if err = conn.QueryRowContext(ctx, "SELECT count(*) FROM sqlite_master;").Scan(&tables); err != nil {
		conn.Close()
		log.Err(err).Str("func", "OpenRecordStore").Msg("record store rejected the key")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	if err = migrations.MigrateRecords(ctx, conn); err != nil {
		conn.Close()
		log.Err(err).Str("func", "OpenRecordStore").Msg("error migrating record store")
		return nil, err
	}
	log.Debug().Str("func", "OpenRecordStore").Msg("record store opened")

	return newRecordStore(NewDB(conn, log)), nil
}

func newRecordStore(db *DB) *recordStore {
	return &recordStore{
		db:         db,
		identities: NewIdentityRepository(db),
	}
}

// recordStoreDSN builds the go-sqlcipher DSN with the raw hex key.
func recordStoreDSN(path string, hexKey []byte) string {
	return fmt.Sprintf("%s?_pragma_key=x'%s'&_pragma_cipher_page_size=4096", path, hexKey)
}

func (s *recordStore) Identities() IdentityRepository {
	return s.identities
}

func (s *recordStore) ExportPlaintext(ctx context.Context, path string) error {
	if s.db.isClosed() {
		return ErrStoreClosed
	}

	// ATTACH is per connection; pin one for the whole sequence.
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	defer conn.Close()

	if _, err = conn.ExecContext(ctx, attachPlaintext, path); err != nil {
		s.db.logger.Err(err).Str("func", "recordStore.ExportPlaintext").Msg("failed to attach export target")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer conn.ExecContext(context.WithoutCancel(ctx), detachPlaintext)

	if _, err = conn.ExecContext(ctx, exportPlaintext); err != nil {
		s.db.logger.Err(err).Str("func", "recordStore.ExportPlaintext").Msg("sqlcipher_export failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *recordStore) ImportPlaintext(ctx context.Context, path string) error {
	if s.db.isClosed() {
		return ErrStoreClosed
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	defer conn.Close()

	if _, err = conn.ExecContext(ctx, attachPlaintext, path); err != nil {
		s.db.logger.Err(err).Str("func", "recordStore.ImportPlaintext").Msg("failed to attach import source")
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	defer conn.ExecContext(context.WithoutCancel(ctx), detachPlaintext)

	var tables int
	if err = conn.QueryRowContext(ctx, countSnapshotTables).Scan(&tables); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if tables != 1 {
		return ErrInvalidSnapshot
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllIdentities); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	res, err := tx.ExecContext(ctx, copySnapshotIdentities)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	imported, _ := res.RowsAffected()
	s.db.logger.Info().Str("func", "recordStore.ImportPlaintext").Int64("identities", imported).Msg("snapshot imported")

	return nil
}

func (s *recordStore) Close() error {
	return s.db.Close()
}
