package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection to a title dataset
type DB struct {
	conn *sql.DB
	Path string
}

// OpenDB opens a SQLite database in read-only query mode
func OpenDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// query_only is per connection; keep a single one so it sticks
	conn.SetMaxOpenConns(1)
	if _, err := conn.Exec("PRAGMA query_only=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting query_only: %w", err)
	}

	return &DB{conn: conn, Path: path}, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.conn.Close()
}

// Conn returns the underlying sql.DB for custom queries
func (d *DB) Conn() *sql.DB {
	return d.conn
}
