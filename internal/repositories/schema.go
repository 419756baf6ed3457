package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"store-api/internal/logger"
)

// SchemaRepository creates the tables and unique indexes the service relies
// on. Invoked only through the passphrase-gated maintenance endpoint; this
// is a one-time bootstrap, not a migration system.
type SchemaRepository struct {
	db *sqlx.DB
}

func NewSchemaRepository(db *sqlx.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

const schemaDDL = `
	CREATE TABLE IF NOT EXISTS items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		category VARCHAR(255) NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		status VARCHAR(50) NOT NULL DEFAULT 'ACTIVE',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		firstname VARCHAR(100) NOT NULL DEFAULT '',
		lastname VARCHAR(100) NOT NULL DEFAULT '',
		status VARCHAR(50) NOT NULL DEFAULT 'ACTIVE',
		profile_image VARCHAR(255),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE UNIQUE INDEX IF NOT EXISTS users_username_key ON users (username);
	CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email);
`

// EnsureIndexes applies the bootstrap DDL. All statements are idempotent.
func (r *SchemaRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schemaDDL)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(schemaDDL), " "),
		"error", err,
	)

	return err
}
