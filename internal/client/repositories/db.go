// Package repositories wires the local SQLite mirror: it opens the
// database, applies the embedded migrations and hands out the repository
// implementations.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/sharebox/internal/client/migrations"
	"github.com/dmitrijs2005/sharebox/internal/client/repositories/shares"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Repositories bundles the repository set plus the underlying handle, which
// callers need for dbx.WithTx and for Close.
type Repositories struct {
	Shares shares.Repository
	DB     *sql.DB
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the mirror database at dsn, migrates it and returns
// the repositories.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection avoids SQLITE_BUSY on concurrent writes and keeps
	// ":memory:" databases from splitting across pooled connections.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Shares: shares.NewSQLiteRepository(db),
		DB:     db,
	}, nil
}
