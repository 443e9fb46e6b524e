package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeJob struct {
	name       string
	rows       []string
	extractErr error
	failOn     map[string]bool
	processed  []string
}

func (j *fakeJob) Name() string { return j.name }

func (j *fakeJob) Extract(context.Context) ([]string, error) {
	if j.extractErr != nil {
		return nil, j.extractErr
	}
	return j.rows, nil
}

func (j *fakeJob) Key(row string) string { return row }

func (j *fakeJob) Process(_ context.Context, row string) error {
	if j.failOn[row] {
		return fmt.Errorf("broken record")
	}
	j.processed = append(j.processed, row)
	return nil
}

func TestRunProcessesAllRecords(t *testing.T) {
	job := &fakeJob{name: "users", rows: []string{"u1", "u2", "u3"}}
	stats, err := Run[string](context.Background(), job)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Extracted != 3 || stats.Migrated != 3 || stats.Failed != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if len(job.processed) != 3 || job.processed[0] != "u1" {
		t.Fatalf("records must process sequentially in order, got %v", job.processed)
	}
}

func TestRunIsolatesRecordFailures(t *testing.T) {
	job := &fakeJob{
		name:   "users",
		rows:   []string{"u1", "u2", "u3"},
		failOn: map[string]bool{"u2": true},
	}
	stats, err := Run[string](context.Background(), job)
	if err != nil {
		t.Fatalf("record failure must not abort the run: %v", err)
	}
	if stats.Migrated != 2 || stats.Failed != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if len(job.processed) != 2 || job.processed[1] != "u3" {
		t.Fatalf("later records must still process, got %v", job.processed)
	}
}

func TestRunAdvancesRecordCounters(t *testing.T) {
	before, err := RecordCounts()
	if err != nil {
		t.Fatalf("RecordCounts: %v", err)
	}
	job := &fakeJob{
		name:   "users",
		rows:   []string{"u1", "u2", "u3"},
		failOn: map[string]bool{"u3": true},
	}
	if _, err := Run[string](context.Background(), job); err != nil {
		t.Fatalf("Run: %v", err)
	}
	after, err := RecordCounts()
	if err != nil {
		t.Fatalf("RecordCounts: %v", err)
	}
	if delta := after["users/migrated"] - before["users/migrated"]; delta != 2 {
		t.Fatalf("expected migrated counter to advance by 2, got %v", delta)
	}
	if delta := after["users/failed"] - before["users/failed"]; delta != 1 {
		t.Fatalf("expected failed counter to advance by 1, got %v", delta)
	}
}

func TestRunFatalOnExtractFailure(t *testing.T) {
	job := &fakeJob{name: "users", extractErr: fmt.Errorf("no such table")}
	_, err := Run[string](context.Background(), job)
	if err == nil || !strings.Contains(err.Error(), "extract users") {
		t.Fatalf("expected extraction error, got %v", err)
	}
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	job := &fakeJob{name: "users", rows: []string{"u1"}}
	if _, err := Run[string](ctx, job); err == nil {
		t.Fatalf("expected context error")
	}
	if len(job.processed) != 0 {
		t.Fatalf("no record should process after cancellation")
	}
}
