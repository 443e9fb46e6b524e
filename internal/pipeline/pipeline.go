// Package pipeline runs migration jobs: one bulk extraction followed by a
// sequential per-record pass. A record that fails to process is logged and
// skipped; the batch keeps going. Only extraction failures abort a run.
package pipeline

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Job describes one migration over source rows of type S.
type Job[S any] interface {
	// Name identifies the job in logs and metrics.
	Name() string
	// Extract pulls the full candidate row set. Errors here are fatal.
	Extract(ctx context.Context) ([]S, error)
	// Key identifies one record for logs and failure reports.
	Key(row S) string
	// Process enriches, transforms and persists one record.
	Process(ctx context.Context, row S) error
}

// Stats summarizes one run.
type Stats struct {
	Job       string
	Extracted int
	Migrated  int
	Failed    int
}

// Run executes the job over its full extraction. The returned error is
// non-nil only when extraction itself fails; per-record failures are
// counted in Stats and reported through logs and metrics.
func Run[S any](ctx context.Context, job Job[S]) (Stats, error) {
	stats := Stats{Job: job.Name()}
	log := logrus.WithField("job", job.Name())

	rows, err := job.Extract(ctx)
	if err != nil {
		recordsTotal.WithLabelValues(job.Name(), outcomeFatal).Inc()
		return stats, fmt.Errorf("extract %s: %w", job.Name(), err)
	}
	stats.Extracted = len(rows)
	log.WithField("records", stats.Extracted).Info("extraction complete")

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("run %s: %w", job.Name(), err)
		}
		if err := job.Process(ctx, row); err != nil {
			stats.Failed++
			recordsTotal.WithLabelValues(job.Name(), outcomeFailed).Inc()
			log.WithError(err).WithField("record", job.Key(row)).Warn("record migration failed")
			continue
		}
		stats.Migrated++
		recordsTotal.WithLabelValues(job.Name(), outcomeMigrated).Inc()
	}

	log.WithFields(logrus.Fields{
		"extracted": stats.Extracted,
		"migrated":  stats.Migrated,
		"failed":    stats.Failed,
	}).Info("run complete")
	return stats, nil
}
