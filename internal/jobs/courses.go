package jobs

import (
	"context"

	"github.com/sirupsen/logrus"

	"edumigrate/internal/archive"
	"edumigrate/internal/pipeline"
	"edumigrate/internal/report"
	"edumigrate/internal/source"
)

// CourseJob migrates legacy courses into course_reports, enriched with the
// remote content hierarchy. A failed hierarchy lookup leaves the scalar
// projections nil and content = {}.
type CourseJob struct {
	Deps
}

var _ pipeline.Job[source.Course] = (*CourseJob)(nil)

func (j *CourseJob) Name() string { return "courses" }

func (j *CourseJob) Extract(ctx context.Context) ([]source.Course, error) {
	return j.Source.Courses(ctx)
}

func (j *CourseJob) Key(c source.Course) string { return c.ID }

func (j *CourseJob) Process(ctx context.Context, c source.Course) error {
	res := j.API.Hierarchy(ctx, c.ID)
	j.archivePayload(ctx, "courses", c.ID, res.Raw())

	channel := res.String("channel")
	if channel == "" {
		channel = c.Channel
	}
	return j.Report.UpsertCourse(ctx, report.CourseReport{
		CourseID: c.ID,
		Name:     c.Name,
		Channel:  nullable(channel),
		Board:    nullable(res.String("board")),
		Medium:   nullable(res.First("medium")),
		Grade:    nullable(res.First("gradeLevel")),
		Subject:  nullable(res.First("subject")),
		Status:   c.Status,
		Content:  res.JSON(`{}`),
	})
}

// archivePayload stores the raw enrichment payload when the archive is
// enabled. Archive failures never fail the record.
func (j *Deps) archivePayload(ctx context.Context, job, id string, payload []byte) {
	if j.Archive == nil || len(payload) == 0 {
		return
	}
	key := archive.Key(job, id)
	if err := j.Archive.Put(ctx, key, payload); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("payload archive failed")
	}
}
