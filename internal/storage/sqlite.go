// Package storage keeps the results of finished games for the lifetime of
// the process. Uses the pure-Go modernc.org/sqlite driver opened in memory,
// so nothing is ever written to disk.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN names a private in-memory database. Every connection to it
// would get a fresh database, so the pool is limited to one connection.
const memoryDSN = "file::memory:"

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("storage: store is closed")

// Store is the in-memory ledger of finished games.
// It is safe for concurrent use by several sessions.
type Store struct {
	db     *sql.DB
	closed atomic.Bool
}

// Result is one finished game.
type Result struct {
	ID        int64
	SessionID string // Terminal or SSH session that played the game
	Player    string // Display name, e.g. the SSH user
	Hits      int
	Misses    int
	Charges   int     // Charges available in that game
	Accuracy  float64 // Hits / (hits + misses) in [0, 1]
	CreatedAt time.Time
}

// Open creates an empty in-memory ledger and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			hits INTEGER NOT NULL,
			misses INTEGER NOT NULL,
			charges INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			created_unix_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_session ON results(session_id);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(hits DESC, misses ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database. The ledger is gone afterwards.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// SaveResult records a finished game and returns its ID.
// A zero CreatedAt is replaced by the current time.
func (s *Store) SaveResult(r Result) (int64, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (session_id, player, hits, misses, charges, accuracy, created_unix_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.Player, r.Hits, r.Misses, r.Charges, r.Accuracy, r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const selectResults = `SELECT id, session_id, player, hits, misses, charges, accuracy, created_unix_ms FROM results`

// TopResults returns the best games of the process, most hits first and
// fewer misses breaking ties. A non-positive limit means 10.
func (s *Store) TopResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		selectResults+` ORDER BY hits DESC, misses ASC, id ASC LIMIT ?`,
		limit,
	)
}

// SessionResults returns the games of one session, newest first.
// A non-positive limit means 10.
func (s *Store) SessionResults(sessionID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		selectResults+` WHERE session_id = ? ORDER BY id DESC LIMIT ?`,
		sessionID, limit,
	)
}

// Best returns the top result. ok is false when nothing has been saved.
func (s *Store) Best() (r Result, ok bool, err error) {
	results, err := s.TopResults(1)
	if err != nil {
		return Result{}, false, err
	}
	if len(results) == 0 {
		return Result{}, false, nil
	}
	return results[0], true, nil
}

// Count returns the number of saved results.
func (s *Store) Count() (int, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM results").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count results: %w", err)
	}
	return n, nil
}

func (s *Store) query(q string, args ...any) ([]Result, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdMS int64
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Player, &r.Hits, &r.Misses, &r.Charges, &r.Accuracy, &createdMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = time.UnixMilli(createdMS)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}
