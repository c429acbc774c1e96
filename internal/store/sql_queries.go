package store

import (
	sq "github.com/Masterminds/squirrel"
)

const identitiesTable = "identities"

var identityColumns = []string{
	"id",
	"first_name",
	"last_name",
	"street",
	"city",
	"region",
	"postal_code",
	"country",
	"phone",
	"date_of_birth",
	"email",
	"notes",
	"created_at",
	"updated_at",
}

const upsertIdentitySuffix = `ON CONFLICT(id) DO UPDATE SET
	first_name    = excluded.first_name,
	last_name     = excluded.last_name,
	street        = excluded.street,
	city          = excluded.city,
	region        = excluded.region,
	postal_code   = excluded.postal_code,
	country       = excluded.country,
	phone         = excluded.phone,
	date_of_birth = excluded.date_of_birth,
	email         = excluded.email,
	notes         = excluded.notes,
	updated_at    = excluded.updated_at`

const (
	getPreference = `SELECT value FROM preferences WHERE key = ?;`

	upsertPreference = `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value      = excluded.value,
			updated_at = excluded.updated_at;`

	deletePreference = `DELETE FROM preferences WHERE key = ?;`

	// the prefix is compared literally, so '_' and '%' are not wildcards
	deletePreferencePrefix = `DELETE FROM preferences WHERE substr(key, 1, ?) = ?;`
)

const (
	attachPlaintext = `ATTACH DATABASE ? AS plaintext KEY '';`
	detachPlaintext = `DETACH DATABASE plaintext;`
	exportPlaintext = `SELECT sqlcipher_export('plaintext');`

	countSnapshotTables = `
		SELECT count(*)
		FROM plaintext.sqlite_master
		WHERE type = 'table' AND name = 'identities';`

	deleteAllIdentities = `DELETE FROM main.identities;`

	copySnapshotIdentities = `
		INSERT INTO main.identities (
			id, first_name, last_name, street, city, region, postal_code,
			country, phone, date_of_birth, email, notes, created_at, updated_at
		)
		SELECT
			id, first_name, last_name, street, city, region, postal_code,
			country, phone, date_of_birth, email, notes, created_at, updated_at
		FROM plaintext.identities;`
)

// psql is the SQLite flavoured statement builder.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveIdentityQuery(values ...any) (string, []any, error) {
	return psql.Insert(identitiesTable).
		Columns(identityColumns...).
		Values(values...).
		Suffix(upsertIdentitySuffix).
		ToSql()
}

func buildGetIdentityQuery(id string) (string, []any, error) {
	return psql.Select(identityColumns...).
		From(identitiesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListIdentitiesQuery() (string, []any, error) {
	return psql.Select(identityColumns...).
		From(identitiesTable).
		OrderBy("updated_at DESC", "id").
		ToSql()
}

func buildDeleteIdentityQuery(id string) (string, []any, error) {
	return psql.Delete(identitiesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
