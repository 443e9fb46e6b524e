// Package jobs defines the per-entity migration jobs: each one pairs a bulk
// extraction with the record-level enrich/transform/persist step that the
// pipeline drives.
package jobs

import (
	"context"

	"edumigrate/internal/archive"
	"edumigrate/internal/config"
	"edumigrate/internal/enrich"
	"edumigrate/internal/pipeline"
	"edumigrate/internal/report"
	"edumigrate/internal/source"
)

// Deps holds the shared collaborators every job draws from. Archive may be
// nil when the payload archive is disabled.
type Deps struct {
	Source  *source.Store
	Report  *report.Store
	API     *enrich.Client
	Archive archive.Store
	Fields  config.Fields
}

// Runner executes one job over its full extraction.
type Runner func(ctx context.Context) (pipeline.Stats, error)

// Registry maps entity names to runnable jobs, in the order migrations
// should run when all entities are selected.
func Registry(deps Deps) (map[string]Runner, []string) {
	order := []string{"users", "courses", "assessments", "attendance", "cohorts"}
	runners := map[string]Runner{
		"users": func(ctx context.Context) (pipeline.Stats, error) {
			return pipeline.Run[source.User](ctx, &UserJob{Deps: deps})
		},
		"courses": func(ctx context.Context) (pipeline.Stats, error) {
			return pipeline.Run[source.Course](ctx, &CourseJob{Deps: deps})
		},
		"assessments": func(ctx context.Context) (pipeline.Stats, error) {
			return pipeline.Run[source.Assessment](ctx, &AssessmentJob{Deps: deps})
		},
		"attendance": func(ctx context.Context) (pipeline.Stats, error) {
			return pipeline.Run[source.Attendance](ctx, &AttendanceJob{Deps: deps})
		},
		"cohorts": func(ctx context.Context) (pipeline.Stats, error) {
			return pipeline.Run[source.Cohort](ctx, &CohortJob{Deps: deps})
		},
	}
	return runners, order
}
