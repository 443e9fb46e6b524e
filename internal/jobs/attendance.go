package jobs

import (
	"context"
	"strings"

	"edumigrate/internal/pipeline"
	"edumigrate/internal/report"
	"edumigrate/internal/source"
)

// AttendanceJob migrates legacy attendance rows into attendance_reports.
// No remote enrichment is involved; the transform collapses the legacy
// status enum into a presence flag.
type AttendanceJob struct {
	Deps
}

var _ pipeline.Job[source.Attendance] = (*AttendanceJob)(nil)

func (j *AttendanceJob) Name() string { return "attendance" }

func (j *AttendanceJob) Extract(ctx context.Context) ([]source.Attendance, error) {
	return j.Source.Attendance(ctx)
}

func (j *AttendanceJob) Key(a source.Attendance) string { return a.ID }

func (j *AttendanceJob) Process(ctx context.Context, a source.Attendance) error {
	return j.Report.UpsertAttendance(ctx, report.AttendanceReport{
		AttendanceID: a.ID,
		UserID:       a.UserID,
		CohortID:     a.CohortID,
		SessionDate:  a.SessionDate,
		Present:      isPresent(a.Status),
	})
}

// isPresent maps the legacy status enum to a presence flag. The legacy data
// carries both full words and single-letter codes.
func isPresent(status string) bool {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "PRESENT", "P":
		return true
	default:
		return false
	}
}
