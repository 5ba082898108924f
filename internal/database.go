package internal

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations, versions sequential
// from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS session_kv (
	session_id TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (session_id, key)
);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}

// OpenDatabase opens (or creates) the dashboard SQLite database at path,
// enables WAL mode, and applies any pending schema migrations.
func OpenDatabase(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	// WAL keeps concurrent command invocations from tripping over each
	// other on reads.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "migrate", Err: err}
	}

	return db, nil
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func runMigrations(db *sqlx.DB) error {
	currentVersion := 0

	var tableCount int
	err := db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}
