package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-persona-keeper/internal/logger"
	"github.com/MKhiriev/go-persona-keeper/internal/utils"
	"github.com/MKhiriev/go-persona-keeper/models"
)

// identityRepository is the SQL implementation of [IdentityRepository]. It
// runs against the "identities" table of the record store.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext]; record contents are never logged, only IDs.
type identityRepository struct {
	db    *DB
	now   func() time.Time
	newID func() string
}

// NewIdentityRepository constructs an [IdentityRepository] over db.
func NewIdentityRepository(db *DB) IdentityRepository {
	return &identityRepository{
		db:    db,
		now:   func() time.Time { return time.Now().UTC() },
		newID: utils.NewUUIDGenerator().Generate,
	}
}

// Save upserts identity. CreatedAt is kept for existing records because the
// conflict clause never touches it.
func (r *identityRepository) Save(ctx context.Context, identity models.Identity) (models.Identity, error) {
	if r.db.isClosed() {
		return models.Identity{}, ErrStoreClosed
	}
	log := logger.FromContext(ctx)

	if identity.ID == "" {
		identity.ID = r.newID()
	}
	now := r.now()
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = now
	}
	identity.UpdatedAt = now

	query, args, err := buildSaveIdentityQuery(
		identity.ID,
		identity.FirstName,
		identity.LastName,
		identity.Street,
		identity.City,
		identity.Region,
		identity.PostalCode,
		identity.Country,
		identity.Phone,
		identity.DateOfBirth,
		identity.Email,
		identity.Notes,
		identity.CreatedAt,
		identity.UpdatedAt,
	)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "identityRepository.Save").
			Str("id", identity.ID).
			Msg("failed to save identity")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return identity, nil
}

func (r *identityRepository) Get(ctx context.Context, id string) (models.Identity, error) {
	if r.db.isClosed() {
		return models.Identity{}, ErrStoreClosed
	}

	query, args, err := buildGetIdentityQuery(id)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	identity, err := scanIdentity(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Identity{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "identityRepository.Get").
			Str("id", id).
			Msg("failed to scan identity row")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return identity, nil
}

func (r *identityRepository) List(ctx context.Context) ([]models.Identity, error) {
	if r.db.isClosed() {
		return nil, ErrStoreClosed
	}
	log := logger.FromContext(ctx)

	query, args, err := buildListIdentitiesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "identityRepository.List").Msg("failed to execute query for listing identities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	identities := make([]models.Identity, 0, 16)
	for rows.Next() {
		identity, scanErr := scanIdentity(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "identityRepository.List").Msg("failed to scan identity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		identities = append(identities, identity)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "identityRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return identities, nil
}

func (r *identityRepository) Delete(ctx context.Context, id string) error {
	if r.db.isClosed() {
		return ErrStoreClosed
	}

	query, args, err := buildDeleteIdentityQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "identityRepository.Delete").
			Str("id", id).
			Msg("failed to delete identity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdentity(row rowScanner) (models.Identity, error) {
	var i models.Identity
	err := row.Scan(
		&i.ID,
		&i.FirstName,
		&i.LastName,
		&i.Street,
		&i.City,
		&i.Region,
		&i.PostalCode,
		&i.Country,
		&i.Phone,
		&i.DateOfBirth,
		&i.Email,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
