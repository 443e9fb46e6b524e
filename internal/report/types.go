package report

import "encoding/json"

// The report rows mirror the destination tables one to one. Pointer fields
// map to nullable columns; RawMessage fields land in JSONB columns and are
// always valid JSON by the time they reach the writer.

type UserReport struct {
	UserID          string
	FullName        string
	Email           *string
	Phone           *string
	Status          string
	TenantID        *string
	TenantName      *string
	UserRole        *string
	StateID         *int64
	StateName       *string
	DistrictID      *int64
	DistrictName    *string
	BlockID         *int64
	BlockName       *string
	VillageID       *int64
	VillageName     *string
	AutomaticMember bool
	Cohorts         json.RawMessage
	CustomFields    json.RawMessage
}

type CourseReport struct {
	CourseID string
	Name     string
	Channel  *string
	Board    *string
	Medium   *string
	Grade    *string
	Subject  *string
	Status   string
	Content  json.RawMessage
}

type AssessmentReport struct {
	AssessmentID string
	Title        string
	CourseID     *string
	MaxScore     *float64
	Status       string
	QuestionSet  json.RawMessage
}

type AttendanceReport struct {
	AttendanceID string
	UserID       string
	CohortID     string
	SessionDate  string
	Present      bool
}

type CohortReport struct {
	CohortID    string
	Name        string
	Type        string
	Status      string
	MemberCount int
	Members     json.RawMessage
}
