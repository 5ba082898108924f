package internal

import (
	"encoding/json"

	"github.com/jmoiron/sqlx"
)

// Scope selects which persistence surface a key lives in.
type Scope string

const (
	// ScopeDurable persists across runs indefinitely.
	ScopeDurable Scope = "durable"
	// ScopeSession persists only for the current session; entries from
	// older sessions are purged when the store is opened.
	ScopeSession Scope = "session"
)

// Store is a typed key-value wrapper over the dashboard database. Values
// round-trip through JSON. Each key is independently atomic; there is no
// transactional guarantee across keys. Keys are single-owner by convention:
// two writers racing on one key is last-write-wins.
type Store struct {
	db        *sqlx.DB
	sessionID string
}

// OpenStore opens the database at path and binds session-scoped keys to
// sessionID. Session rows left behind by other sessions are deleted, which
// is what ends a session for a command-line process.
func OpenStore(path, sessionID string) (*Store, error) {
	db, err := OpenDatabase(path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("DELETE FROM session_kv WHERE session_id != ?", sessionID); err != nil {
		db.Close()
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}

	return &Store{db: db, sessionID: sessionID}, nil
}

// NewStore wraps an already-open database. Used by tests and by callers
// that manage the connection themselves.
func NewStore(db *sqlx.DB, sessionID string) *Store {
	return &Store{db: db, sessionID: sessionID}
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SessionID returns the session the store's session scope is bound to.
func (s *Store) SessionID() string {
	return s.sessionID
}

// Get reads the value at key into v and reports whether a usable value was
// found. A missing key, an unreadable row, and a value that no longer
// decodes into v all report false: corrupt data is "no data", never an
// error the caller has to handle.
func (s *Store) Get(scope Scope, key string, v interface{}) bool {
	var raw string
	var err error

	switch scope {
	case ScopeSession:
		err = s.db.Get(&raw,
			"SELECT value FROM session_kv WHERE session_id = ? AND key = ?",
			s.sessionID, key)
	default:
		err = s.db.Get(&raw, "SELECT value FROM kv WHERE key = ?", key)
	}
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		Log.Debug().Str("key", key).Err(err).Msg("discarding undecodable stored value")
		return false
	}

	return true
}

// Set serializes v and upserts it at key, replacing any prior value. A
// rejected write comes back as a *QuotaError; the caller's in-memory state
// remains the source of truth for the rest of the session.
func (s *Store) Set(scope Scope, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &QuotaError{Scope: scope, Key: key, Err: err}
	}

	switch scope {
	case ScopeSession:
		_, err = s.db.Exec(`
			INSERT INTO session_kv (session_id, key, value, updated_at)
			VALUES (?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (session_id, key) DO UPDATE
			SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
			s.sessionID, key, string(raw))
	default:
		_, err = s.db.Exec(`
			INSERT INTO kv (key, value, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (key) DO UPDATE
			SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
			key, string(raw))
	}
	if err != nil {
		return &QuotaError{Scope: scope, Key: key, Err: err}
	}

	return nil
}

// Remove deletes the value at key. Removing an absent key is a no-op.
func (s *Store) Remove(scope Scope, key string) error {
	var err error
	switch scope {
	case ScopeSession:
		_, err = s.db.Exec(
			"DELETE FROM session_kv WHERE session_id = ? AND key = ?",
			s.sessionID, key)
	default:
		_, err = s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	}
	if err != nil {
		return &QuotaError{Scope: scope, Key: key, Err: err}
	}
	return nil
}

// Clear deletes every key in the given scope.
func (s *Store) Clear(scope Scope) error {
	var err error
	switch scope {
	case ScopeSession:
		_, err = s.db.Exec("DELETE FROM session_kv WHERE session_id = ?", s.sessionID)
	default:
		_, err = s.db.Exec("DELETE FROM kv")
	}
	if err != nil {
		return &QuotaError{Scope: scope, Key: "*", Err: err}
	}
	return nil
}
