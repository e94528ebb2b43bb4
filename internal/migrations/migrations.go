// Package migrations embeds the SQL schema of the users database and applies
// it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/dmitrijs2005/userreg/internal/logging"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var Migrations embed.FS

// Run applies all pending migrations to db. Already applied migrations are
// skipped, so calling Run repeatedly is safe.
//
// A goose.Provider is built per call; goose's package-level settings are
// left untouched.
func Run(ctx context.Context, db *sql.DB, log logging.Logger) error {
	log = log.With("component", "migrations")

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, Migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		log.Debug(ctx, "migration applied", "version", r.Source.Version, "file", r.Source.Path, "duration", r.Duration)
	}
	return nil
}
