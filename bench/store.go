package bench

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists benchmark results in a SQLite database so runs can be
// compared across inputs, machines, and revisions.
type Store struct {
	conn *sql.DB
	Path string
}

const schema = `
CREATE TABLE IF NOT EXISTS results (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at   TEXT    NOT NULL,
	algorithm    TEXT    NOT NULL,
	connectivity INTEGER NOT NULL,
	width        INTEGER NOT NULL,
	height       INTEGER NOT NULL,
	iterations   INTEGER NOT NULL,
	mean_ms      REAL    NOT NULL,
	stddev_ms    REAL    NOT NULL,
	min_ms       REAL    NOT NULL,
	max_ms       REAL    NOT NULL,
	components   INTEGER NOT NULL
);`

// OpenStore opens (creating if needed) a SQLite results database with WAL
// mode enabled and the results table bootstrapped.
func OpenStore(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("bench: opening database: %w", err)
	}

	// WAL allows concurrent readers while a benchmark run is writing.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("bench: setting WAL mode: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("bench: creating schema: %w", err)
	}

	return &Store{conn: conn, Path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// SaveResult inserts one benchmark result, stamped with the current UTC time.
func (s *Store) SaveResult(res *Result) error {
	_, err := s.conn.Exec(
		`INSERT INTO results
		 (created_at, algorithm, connectivity, width, height, iterations,
		  mean_ms, stddev_ms, min_ms, max_ms, components)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339),
		res.Algorithm.String(), int(res.Connectivity),
		res.Width, res.Height, res.Iterations,
		res.MeanMs, res.StdDevMs, res.MinMs, res.MaxMs, res.Components,
	)
	if err != nil {
		return fmt.Errorf("bench: saving result: %w", err)
	}

	return nil
}

// Record is one persisted benchmark row.
type Record struct {
	ID           int64
	CreatedAt    string
	Algorithm    string
	Connectivity int
	Width        int
	Height       int
	Iterations   int
	MeanMs       float64
	StdDevMs     float64
	MinMs        float64
	MaxMs        float64
	Components   int
}

// ListResults returns up to limit most recent results, newest first.
func (s *Store) ListResults(limit int) ([]Record, error) {
	rows, err := s.conn.Query(
		`SELECT id, created_at, algorithm, connectivity, width, height,
		        iterations, mean_ms, stddev_ms, min_ms, max_ms, components
		 FROM results ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("bench: listing results: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.CreatedAt, &rec.Algorithm, &rec.Connectivity,
			&rec.Width, &rec.Height, &rec.Iterations,
			&rec.MeanMs, &rec.StdDevMs, &rec.MinMs, &rec.MaxMs, &rec.Components,
		); err != nil {
			return nil, fmt.Errorf("bench: scanning result: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
