package service

import (
	"path/filepath"

	"github.com/MKhiriev/go-persona-keeper/internal/backup"
	"github.com/MKhiriev/go-persona-keeper/internal/config"
	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/store"
)

// Services aggregates the services available once the record store is open.
type Services struct {
	IdentityService IdentityService
	BackupService   BackupService
}

// NewServices builds the services over an opened record store. Backup
// snapshots are staged next to the record store file.
func NewServices(records store.RecordStore, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	identities := NewIdentityValidationService().Wrap(NewIdentityService(records.Identities(), logger))

	return &Services{
		IdentityService: identities,
		BackupService:   NewBackupService(records, backup.NewCodec(logger), filepath.Dir(cfg.Storage.Records.Path), logger),
	}
}
