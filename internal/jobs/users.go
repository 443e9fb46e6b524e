package jobs

import (
	"context"

	"edumigrate/internal/pipeline"
	"edumigrate/internal/report"
	"edumigrate/internal/source"
)

// UserJob migrates legacy users into user_reports. Per-record enrichment
// (location attributes, tenant/role, memberships) is best effort: a lookup
// failure degrades that facet to its empty default and the record still
// migrates.
type UserJob struct {
	Deps
}

var _ pipeline.Job[source.User] = (*UserJob)(nil)

func (j *UserJob) Name() string { return "users" }

func (j *UserJob) Extract(ctx context.Context) ([]source.User, error) {
	return j.Source.Users(ctx)
}

func (j *UserJob) Key(u source.User) string { return u.ID }

func (j *UserJob) Process(ctx context.Context, u source.User) error {
	attrs := j.Source.LocationAttributes(ctx, u.ID, j.Fields)
	loc := j.Source.ResolveLocation(ctx, decodeLocationIDs(attrs))
	tenantRole := j.Source.TenantRole(ctx, u.ID)
	memberships := j.Source.MembershipsOf(ctx, u.ID)
	custom := j.Source.CustomAttributes(ctx, u.ID, j.Fields)

	return j.Report.UpsertUser(ctx, report.UserReport{
		UserID:          u.ID,
		FullName:        fullName(u.FirstName, u.MiddleName, u.LastName),
		Email:           nullable(u.Email),
		Phone:           nullable(u.Phone),
		Status:          u.Status,
		TenantID:        tenantRole.TenantID,
		TenantName:      tenantRole.TenantName,
		UserRole:        tenantRole.Role,
		StateID:         loc.State,
		StateName:       loc.StateName,
		DistrictID:      loc.District,
		DistrictName:    loc.DistrictName,
		BlockID:         loc.Block,
		BlockName:       loc.BlockName,
		VillageID:       loc.Village,
		VillageName:     loc.VillageName,
		AutomaticMember: anyAutomatic(memberships),
		Cohorts:         marshalMemberships(memberships),
		CustomFields:    marshalCustomFields(custom),
	})
}
