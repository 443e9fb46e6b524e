package jobs

import (
	"context"

	"edumigrate/internal/pipeline"
	"edumigrate/internal/report"
	"edumigrate/internal/source"
)

// CohortJob migrates legacy cohorts into cohort_reports with their member
// lists denormalized into a JSON array. A failed member lookup degrades to
// an empty list, matching the per-record isolation of the other jobs.
type CohortJob struct {
	Deps
}

var _ pipeline.Job[source.Cohort] = (*CohortJob)(nil)

func (j *CohortJob) Name() string { return "cohorts" }

func (j *CohortJob) Extract(ctx context.Context) ([]source.Cohort, error) {
	return j.Source.Cohorts(ctx)
}

func (j *CohortJob) Key(c source.Cohort) string { return c.ID }

func (j *CohortJob) Process(ctx context.Context, c source.Cohort) error {
	members := j.Source.MembersOf(ctx, c.ID)
	return j.Report.UpsertCohort(ctx, report.CohortReport{
		CohortID:    c.ID,
		Name:        c.Name,
		Type:        c.Type,
		Status:      c.Status,
		MemberCount: len(members),
		Members:     marshalMemberships(members),
	})
}
