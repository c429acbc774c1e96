package store

import (
	"database/sql"
	"sync/atomic"

	"github.com/MKhiriev/go-persona-keeper/internal/logger"
)

// DB wraps a database handle with the component logger and a closed flag.
type DB struct {
	*sql.DB
	logger *logger.Logger
	closed atomic.Bool
}

// NewDB wraps an already opened handle.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: conn, logger: log}
}

// Close closes the underlying handle once.
func (db *DB) Close() error {
	if db.closed.Swap(true) {
		return nil
	}
	return db.DB.Close()
}

func (db *DB) isClosed() bool {
	return db.closed.Load()
}
