package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite database with the dashboard
// schema for testing
func CreateInMemoryDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}
	// Every connection to :memory: gets its own database, so keep the
	// pool at one connection.
	db.SetMaxOpenConns(1)

	schemaSQL := `
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
	`
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create dashboard schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })

	return db
}

// InsertKV inserts a raw durable key-value row into the database
func InsertKV(t *testing.T, db *sqlx.DB, key, value string) {
	t.Helper()
	if _, err := db.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", key, value); err != nil {
		t.Fatalf("Failed to insert kv row: %v", err)
	}
}

// InsertSessionKV inserts a raw session-scoped key-value row into the database
func InsertSessionKV(t *testing.T, db *sqlx.DB, sessionID, key, value string) {
	t.Helper()
	if _, err := db.Exec(
		"INSERT INTO session_kv (session_id, key, value) VALUES (?, ?, ?)",
		sessionID, key, value,
	); err != nil {
		t.Fatalf("Failed to insert session_kv row: %v", err)
	}
}
