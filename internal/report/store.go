package report

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"

	"edumigrate/internal/config"
)

var (
	openMu  sync.Mutex
	sqlOpen = sql.Open
)

// Store owns the destination connection. The destination is always
// Postgres; statements use $N placeholders directly.
type Store struct {
	db *sql.DB
}

// Open connects to the destination database and verifies the connection.
func Open(ctx context.Context, cfg config.Report) (*Store, error) {
	openMu.Lock()
	db, err := sqlOpen("pgx", cfg.DSN)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open report db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping report db: %w", err)
	}
	return &Store{db: db}, nil
}

// EnsureSchema creates the report tables when they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure report schema: %w", err)
		}
	}
	return nil
}

// Close releases the destination connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// OverrideSQLOpen swaps the sql.Open implementation for tests and returns a
// restore func.
func OverrideSQLOpen(fn func(driver, dsn string) (*sql.DB, error)) func() {
	openMu.Lock()
	prev := sqlOpen
	sqlOpen = fn
	openMu.Unlock()
	return func() {
		openMu.Lock()
		sqlOpen = prev
		openMu.Unlock()
	}
}
