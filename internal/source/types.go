package source

// User is one legacy user row. Timestamps and status enums are carried as
// the text the legacy schema stores them in.
type User struct {
	ID         string
	FirstName  string
	MiddleName string
	LastName   string
	Email      string
	Phone      string
	Status     string
	Meta       []byte // nullable JSON summary blob
	CreatedAt  string
	UpdatedAt  string
}

// Course is one legacy course row.
type Course struct {
	ID        string
	Name      string
	Channel   string
	Framework string
	Status    string
	CreatedAt string
}

// Assessment is one legacy assessment row.
type Assessment struct {
	ID        string
	Title     string
	CourseID  string
	MaxScore  *float64
	Status    string
	CreatedAt string
}

// Attendance is one legacy attendance row.
type Attendance struct {
	ID          string
	UserID      string
	CohortID    string
	SessionDate string
	Status      string
}

// Cohort is one legacy cohort row.
type Cohort struct {
	ID        string
	Name      string
	Type      string
	Status    string
	StartedAt string
}

// Membership links a user to a cohort. Automatic memberships are created by
// the platform rather than an operator.
type Membership struct {
	CohortID  string `json:"cohortId"`
	UserID    string `json:"userId"`
	Role      string `json:"role"`
	Automatic bool   `json:"automatic"`
}

// TenantRole is the joined tenant/role projection for one user. All fields
// are nil when the user has no tenant mapping.
type TenantRole struct {
	TenantID   *string
	TenantName *string
	Role       *string
}

// LocationIDs holds the normalized location identifiers decoded from the
// attribute store for one record. Nil means the level was absent.
type LocationIDs struct {
	State    *int64
	District *int64
	Block    *int64
	Village  *int64
}

// Location pairs the decoded identifiers with their resolved display names.
type Location struct {
	LocationIDs
	StateName    *string
	DistrictName *string
	BlockName    *string
	VillageName  *string
}
