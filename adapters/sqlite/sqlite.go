// Package sqlite implements the storage contract against a SQLite-family
// database through database/sql and the pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"

	"github.com/jacobprall/next-auth/core"
)

// EnvConnectionString names the environment variable consulted by Open
// when no connection string is passed explicitly.
const EnvConnectionString = "NEXTAUTH_SQLITE_URL"

// Adapter implements core.Adapter over a *sql.DB.
type Adapter struct {
	db  *sql.DB
	log *log.Logger
}

var _ core.Adapter = (*Adapter)(nil)

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger replaces the default stderr logger.
func WithLogger(l *log.Logger) Option {
	return func(a *Adapter) {
		a.log = l
	}
}

// New wraps an already-opened database handle. The caller keeps ownership
// of the handle; Close is still safe to call and closes it.
func New(db *sql.DB, opts ...Option) *Adapter {
	a := &Adapter{
		db:  db,
		log: log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Open connects to the database named by connString, falling back to the
// NEXTAUTH_SQLITE_URL environment variable when connString is empty.
//
// The connection is verified with a ping and configured for server use:
// WAL journaling so reads proceed during writes, and foreign key
// enforcement, which SQLite leaves off by default.
func Open(connString string, opts ...Option) (*Adapter, error) {
	if connString == "" {
		connString = os.Getenv(EnvConnectionString)
	}
	if connString == "" {
		return nil, core.ErrConnectionStringRequired
	}

	db, err := sql.Open("sqlite", connString)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	return New(db, opts...), nil
}

// Close closes the underlying database handle.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// querier is satisfied by both *sql.DB and *sql.Tx so operations can run
// their statements inside or outside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// queryObject runs query and returns the first result row as a marshalled
// object (see ObjectFromRow), or nil when the query matches nothing.
func queryObject(ctx context.Context, q querier, query string, args ...any) (map[string]any, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	row, err := scanRow(rows)
	if err != nil {
		return nil, err
	}
	return ObjectFromRow(row), nil
}

// queryObjects is queryObject for multi-row results.
func queryObjects(ctx context.Context, q querier, query string, args ...any) ([]map[string]any, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var objects []map[string]any
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		objects = append(objects, ObjectFromRow(row))
	}
	return objects, rows.Err()
}

// scanRow reads the current row into a column-name keyed map. TEXT columns
// may surface as []byte depending on the driver; they are normalized to
// string so the marshaller sees one representation.
func scanRow(rows *sql.Rows) (map[string]any, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	row := make(map[string]any, len(cols))
	for i, col := range cols {
		if b, ok := vals[i].([]byte); ok {
			row[col] = string(b)
			continue
		}
		row[col] = vals[i]
	}
	return row, nil
}
