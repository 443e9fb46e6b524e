// Package source provides read-only access to the legacy database: the bulk
// row extraction that feeds each migration job plus the lookup queries used
// to enrich individual records (attribute store, location reference tables,
// tenant/role joins).
package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx as database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver

	"edumigrate/internal/config"
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// Store wraps the legacy database connection. It is opened once per run and
// held until the batch completes.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the legacy database using the configured driver
// (sqlite for snapshot files, postgres for a live legacy server).
func Open(ctx context.Context, cfg config.Source) (*Store, error) {
	driverName := "sqlite"
	if cfg.Driver == "postgres" {
		driverName = "pgx"
	}
	openMu.Lock()
	db, err := sqlOpen(driverName, cfg.DSN)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open source db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping source db: %w", err)
	}
	return &Store{db: db, driver: cfg.Driver}, nil
}

// Close releases the source connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for test seeding.
func (s *Store) DB() *sql.DB { return s.db }

// bind rewrites ? placeholders to the $N form when the store talks to
// postgres. Queries are written once in the sqlite form.
func (s *Store) bind(query string) string {
	if s.driver != "postgres" {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a restore
// function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
