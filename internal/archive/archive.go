// Package archive stores the raw enrichment payloads fetched during a run
// so failed transformations can be replayed without hitting the remote API
// again. The archive is optional; with no driver configured, writes are
// skipped entirely.
package archive

import (
	"context"
	"fmt"

	"edumigrate/internal/config"
)

// Driver identifies an archive backend.
type Driver string

const (
	DriverFilesystem Driver = "fs"
	DriverS3         Driver = "s3"
	DriverMemory     Driver = "memory"
)

// Store persists raw payloads keyed by job and record id. Unlike a blob
// store, writes overwrite: re-running a migration refreshes the archived
// payload the same way it refreshes the report row.
type Store interface {
	Put(ctx context.Context, key string, payload []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Driver() Driver
}

// Open builds the configured archive backend. An empty driver disables the
// archive and returns a nil Store.
func Open(ctx context.Context, cfg config.Archive) (Store, error) {
	switch Driver(cfg.Driver) {
	case "":
		return nil, nil
	case DriverFilesystem:
		return NewFilesystem(cfg.FSRoot)
	case DriverS3:
		return NewS3(ctx, cfg)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown archive driver %s", cfg.Driver)
	}
}

// Key builds the canonical archive key for one record's payload.
func Key(job, id string) string {
	return fmt.Sprintf("%s/%s.json", job, id)
}
