// Package store implements the cardbox storage boundary on SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/etnz/cardbox"
	"github.com/etnz/cardbox/logger"
)

// Database connection pool configuration
const (
	maxOpenConns    = 4
	maxIdleConns    = 2
	connMaxIdleTime = time.Minute * 15
	pingTimeout     = time.Second * 10
)

const schema = `
CREATE TABLE IF NOT EXISTS inventory (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	category TEXT NOT NULL,
	name TEXT NOT NULL,
	set_name TEXT NOT NULL,
	card_number TEXT NOT NULL DEFAULT '',
	condition TEXT NOT NULL DEFAULT '',
	purchase_price TEXT NOT NULL,
	market_value TEXT NOT NULL,
	quantity INTEGER NOT NULL CHECK (quantity > 0)
);
CREATE INDEX IF NOT EXISTS inventory_key ON inventory (category, name, set_name, condition);

CREATE TABLE IF NOT EXISTS sales (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	category TEXT NOT NULL,
	name TEXT NOT NULL,
	set_name TEXT NOT NULL,
	card_number TEXT NOT NULL DEFAULT '',
	condition TEXT NOT NULL DEFAULT '',
	purchase_price TEXT NOT NULL,
	total_sold_price TEXT NOT NULL,
	profit TEXT NOT NULL,
	quantity_sold INTEGER NOT NULL CHECK (quantity_sold > 0),
	sold_on TEXT
);`

// querier is what *sql.DB and *sql.Tx have in common.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB is a cardbox.Store backed by a SQLite database file.
type DB struct {
	db *sql.DB
	q  querier
	tx *sql.Tx // not nil inside Atomically
}

var _ cardbox.Store = (*DB)(nil)

// Open opens (creating if needed) the database at path and ensures the schema exists.
// ":memory:" opens a private in-memory database.
func Open(path string) (*DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %q: %w", path, err)
	}

	if path == ":memory:" {
		// every connection would see its own empty database.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxIdleConns)
		db.SetConnMaxIdleTime(connMaxIdleTime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %q: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema in %q: %w", path, err)
	}
	return &DB{db: db, q: db}, nil
}

// Close closes the database.
func (s *DB) Close() error {
	return s.db.Close()
}

// Atomically runs fn in a single SQL transaction. Nested calls join the
// enclosing transaction.
func (s *DB) Atomically(ctx context.Context, fn func(cardbox.Store) error) error {
	if s.tx != nil {
		return fn(s)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&DB{db: s.db, q: tx, tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return storageErr("commit transaction", err)
	}
	return nil
}

func storageErr(op string, err error) error {
	logger.LogError("Database %s failed: %v", op, err)
	return &cardbox.StorageError{Op: op, Err: err}
}

// exec runs a statement that must touch exactly one row of kind/id.
func (s *DB) execOne(ctx context.Context, op, kind string, id int64, stmt string, args ...any) error {
	res, err := s.q.ExecContext(ctx, stmt, args...)
	if err != nil {
		return storageErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(op, err)
	}
	if n == 0 {
		return &cardbox.NotFoundError{Kind: kind, ID: id}
	}
	return nil
}

func (s *DB) insert(ctx context.Context, op, stmt string, args ...any) (int64, error) {
	res, err := s.q.ExecContext(ctx, stmt, args...)
	if err != nil {
		return 0, storageErr(op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr(op, err)
	}
	return id, nil
}

// likePattern builds a LIKE pattern matching term anywhere, with LIKE wildcards escaped.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}

// scanner is what *sql.Row and *sql.Rows have in common.
type scanner interface {
	Scan(dest ...any) error
}

// errConsumed is returned when a lazy sequence is iterated a second time.
var errConsumed = errors.New("sequence already consumed")
