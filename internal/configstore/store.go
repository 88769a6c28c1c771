package configstore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// currentSchemaVersion tracks additive migrations applied via PRAGMA user_version.
// 0 - initial schema (config table + three unique indexes)
const currentSchemaVersion = 0

// Store owns the config table and generates configuration keys. All methods
// are safe to call only from the single dispatch goroutine: the store keeps
// no internal lock, matching the event-loop model.
type Store struct {
	db     *sql.DB
	keyGen KeyGenerator
	state  State
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithKeyGenerator overrides the production UUIDKeyGenerator, used by tests
// that need deterministic or collision-forcing key sequences.
func WithKeyGenerator(g KeyGenerator) Option {
	return func(s *Store) { s.keyGen = g }
}

// Open creates or opens a SQLite database at path, applies the required
// pragmas, and ensures the schema exists. Idempotent: safe to call against
// an already-initialized database.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open config store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to config store: %w", err)
	}

	// SQLite only supports one writer at a time; the event loop is already
	// single-threaded, so a single connection avoids SQLITE_BUSY entirely.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure config store: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply config store schema: %w", err)
	}

	s := &Store{db: db, keyGen: UUIDKeyGenerator{}, state: StateGood}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// State returns the db_state left by the most recently completed call.
func (s *Store) State() State {
	return s.state
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return runMigrations(db)
}

// runMigrations applies incremental schema migrations based on user_version.
// There are none beyond the base schema today; the machinery is kept so a
// future additive change (e.g. a new index) has somewhere idiomatic to go.
func runMigrations(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version == currentSchemaVersion {
		return nil
	}
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// countWhere returns COUNT(*) FROM config WHERE <predicate>, implementing
// the pre-condition pattern: every unknown_id/unknown_key detection is a
// COUNT(*) before the primary query.
func (s *Store) countWhere(ctx context.Context, predicate string, args ...any) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM config WHERE " + predicate
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
