package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Connection options applied to every pooled connection. Case-sensitive LIKE
// keeps name lookups exact when no wildcard is given.
const connParams = "_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000&_cslike=1&_txlock=immediate"

type DB struct {
	*sql.DB
	path string
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create database directory: %v", ErrStorageUnavailable, err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?"+connParams)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %v", ErrStorageUnavailable, err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// sql.Open is lazy; make sure the file is actually usable
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, mapError(fmt.Errorf("failed to open database: %w", err))
	}

	return &DB{DB: db, path: dbPath}, nil
}

// Path returns the file the database was opened from.
func (db *DB) Path() string {
	return db.path
}

// Migrate applies every pending migration embedded in the binary.
func (db *DB) Migrate() error {
	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db.DB, migrations)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	results, err := provider.Up(context.Background())
	if err != nil {
		return mapError(fmt.Errorf("migration failed: %w", err))
	}

	for _, result := range results {
		slog.Debug("migration applied",
			"version", result.Source.Version,
			"duration", result.Duration,
		)
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
