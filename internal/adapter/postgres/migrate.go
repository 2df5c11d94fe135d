package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/fordrm/the-a-team-sub000/migrations"
)

// OpenMigrator opens a database/sql connection for dsn and returns a goose
// provider over the embedded migrations. The caller closes the *sql.DB.
func OpenMigrator(dsn string) (*goose.Provider, *sql.DB, error) {
	return openMigrator(dsn, migrations.FS)
}

func openMigrator(dsn string, fsys fs.FS) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql open: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, db, nil
}

// MigrateUp applies all pending migrations and returns how many were applied.
func MigrateUp(ctx context.Context, dsn string) (int, error) {
	provider, db, err := OpenMigrator(dsn)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("goose up: %w", err)
	}
	return len(results), nil
}
