// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-persona-keeper/internal/backup"
	"github.com/MKhiriev/go-persona-keeper/internal/crypto"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/store"
)

const snapshotName = "snapshot.db"

var sqliteHeader = []byte("SQLite format 3\x00")

type backupService struct {
	records store.RecordStore
	codec   backup.Codec
	tempDir string

	logger *logger.Logger
}

// NewBackupService stages plaintext snapshots in a private directory created
// under tempDir for the duration of each call.
func NewBackupService(records store.RecordStore, codec backup.Codec, tempDir string, logger *logger.Logger) BackupService {
	return &backupService{
		records: records,
		codec:   codec,
		tempDir: tempDir,
		logger:  logger,
	}
}

func (s *backupService) Export(ctx context.Context, w io.Writer, password []byte) error {
	if len(password) == 0 {
		return ErrEmptyPassword
	}

	plain, err := s.withSnapshotDir(func(path string) ([]byte, error) {
		if err := s.records.ExportPlaintext(ctx, path); err != nil {
			return nil, err
		}
		return os.ReadFile(path)
	})
	if err != nil {
		crypto.Wipe(password)
		s.logger.Err(err).Str("func", "backupService.Export").Msg("error taking snapshot")
		return fmt.Errorf("snapshot record store: %w", err)
	}
	defer crypto.Wipe(plain)

	bundle, err := s.codec.Encrypt(plain, password)
	if err != nil {
		return fmt.Errorf("encrypt snapshot: %w", err)
	}

	if _, err = w.Write(bundle); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}
	s.logger.Info().Int("size", len(bundle)).Msg("backup exported")

	return nil
}

func (s *backupService) Import(ctx context.Context, r io.Reader, password []byte) error {
	if len(password) == 0 {
		return ErrEmptyPassword
	}

	bundle, err := io.ReadAll(r)
	if err != nil {
		crypto.Wipe(password)
		return fmt.Errorf("read bundle: %w", err)
	}

	plain, err := s.codec.Decrypt(bundle, password)
	if err != nil {
		s.logger.Warn().Err(err).Msg("backup rejected")
		return err
	}
	defer crypto.Wipe(plain)

	if !bytes.HasPrefix(plain, sqliteHeader) {
		return store.ErrInvalidSnapshot
	}

	_, err = s.withSnapshotDir(func(path string) ([]byte, error) {
		if err := os.WriteFile(path, plain, 0o600); err != nil {
			return nil, err
		}
		return nil, s.records.ImportPlaintext(ctx, path)
	})
	if err != nil {
		s.logger.Err(err).Str("func", "backupService.Import").Msg("error restoring snapshot")
		return fmt.Errorf("restore snapshot: %w", err)
	}
	s.logger.Info().Msg("backup imported")

	return nil
}

// withSnapshotDir runs fn with a snapshot path inside a fresh 0700
// directory. The snapshot is zeroed and the directory removed afterwards.
func (s *backupService) withSnapshotDir(fn func(path string) ([]byte, error)) ([]byte, error) {
	dir, err := os.MkdirTemp(s.tempDir, "persona-backup-")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	path := filepath.Join(dir, snapshotName)

	defer func() {
		if err := zeroFile(path); err != nil && !os.IsNotExist(err) {
			s.logger.Err(err).Str("func", "backupService.withSnapshotDir").Msg("error zeroing snapshot")
		}
		if err := os.RemoveAll(dir); err != nil {
			s.logger.Err(err).Str("func", "backupService.withSnapshotDir").Msg("error removing staging dir")
		}
	}()

	return fn(path)
}

func zeroFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if _, err = f.Write(make([]byte, info.Size())); err != nil {
		return err
	}
	return f.Sync()
}
