package jobs

import (
	"context"

	"edumigrate/internal/pipeline"
	"edumigrate/internal/report"
	"edumigrate/internal/source"
)

// AssessmentJob migrates legacy assessments into assessment_reports,
// enriched with the remote question-set search. The destination table has
// no uniqueness constraint, so persistence goes through the transactional
// replace rather than an upsert.
type AssessmentJob struct {
	Deps
}

var _ pipeline.Job[source.Assessment] = (*AssessmentJob)(nil)

func (j *AssessmentJob) Name() string { return "assessments" }

func (j *AssessmentJob) Extract(ctx context.Context) ([]source.Assessment, error) {
	return j.Source.Assessments(ctx)
}

func (j *AssessmentJob) Key(a source.Assessment) string { return a.ID }

func (j *AssessmentJob) Process(ctx context.Context, a source.Assessment) error {
	res := j.API.SearchQuestionSet(ctx, a.ID)
	j.archivePayload(ctx, "assessments", a.ID, res.Raw())

	maxScore := a.MaxScore
	if maxScore == nil && !res.Empty() {
		if v := res.Float("0.maxScore"); v > 0 {
			maxScore = &v
		}
	}
	return j.Report.ReplaceAssessment(ctx, report.AssessmentReport{
		AssessmentID: a.ID,
		Title:        a.Title,
		CourseID:     nullable(a.CourseID),
		MaxScore:     maxScore,
		Status:       a.Status,
		QuestionSet:  res.JSON(`[]`),
	})
}
