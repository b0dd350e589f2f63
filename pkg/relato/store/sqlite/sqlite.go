package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/cognicore/relato/pkg/relato/internalerr"
	"github.com/cognicore/relato/pkg/relato/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite-backed fact store with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty database path", internalerr.ErrInvalidInput)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	// Insertion order is the rowid order; queries rely on ORDER BY id.
	const schema = `
CREATE TABLE IF NOT EXISTS facts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	predicate TEXT NOT NULL,
	args TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_facts_predicate ON facts(predicate);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// Insert appends an argument list under the lowercased predicate.
func (s *sqliteStore) Insert(ctx context.Context, predicate string, args []string) error {
	if args == nil {
		args = []string{}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode args: %w", err)
	}

	pred := strings.ToLower(predicate)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO facts (predicate, args) VALUES (?, ?)`, pred, string(encoded))
	if err != nil {
		return fmt.Errorf("insert fact: %w", err)
	}
	return nil
}

// Query returns matching argument lists in insertion order. Rows are
// fetched by predicate and matched in Go so both store implementations
// share one matcher.
func (s *sqliteStore) Query(ctx context.Context, predicate string, pattern store.Pattern) ([][]string, error) {
	pred := strings.ToLower(predicate)
	rows, err := s.db.QueryContext(ctx,
		`SELECT args FROM facts WHERE predicate = ? ORDER BY id`, pred)
	if err != nil {
		return nil, fmt.Errorf("query facts: %w", err)
	}
	defer rows.Close()

	var results [][]string
	for rows.Next() {
		var encoded string
		if err := rows.Scan(&encoded); err != nil {
			return nil, err
		}
		var args []string
		if err := json.Unmarshal([]byte(encoded), &args); err != nil {
			return nil, fmt.Errorf("decode args: %w", err)
		}
		if pattern.Matches(args) {
			results = append(results, args)
		}
	}
	return results, rows.Err()
}

// Facts returns every stored fact, grouped by predicate, each
// predicate's facts in insertion order.
func (s *sqliteStore) Facts(ctx context.Context) ([]store.Fact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT predicate, args FROM facts ORDER BY predicate, id`)
	if err != nil {
		return nil, fmt.Errorf("list facts: %w", err)
	}
	defer rows.Close()

	var out []store.Fact
	for rows.Next() {
		var pred, encoded string
		if err := rows.Scan(&pred, &encoded); err != nil {
			return nil, err
		}
		var args []string
		if err := json.Unmarshal([]byte(encoded), &args); err != nil {
			return nil, fmt.Errorf("decode args: %w", err)
		}
		out = append(out, store.Fact{Predicate: pred, Args: args})
	}
	return out, rows.Err()
}
