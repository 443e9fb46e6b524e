package report

// The destination schema is owned by this tool and created on startup.
// assessment_reports deliberately carries no uniqueness constraint; it
// matches a pre-existing reporting table, so the writer replaces rows by
// key instead of upserting.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS user_reports (
		user_id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		status TEXT NOT NULL,
		tenant_id TEXT,
		tenant_name TEXT,
		user_role TEXT,
		state_id BIGINT,
		state_name TEXT,
		district_id BIGINT,
		district_name TEXT,
		block_id BIGINT,
		block_name TEXT,
		village_id BIGINT,
		village_name TEXT,
		automatic_member BOOLEAN NOT NULL,
		cohorts JSONB NOT NULL,
		custom_fields JSONB NOT NULL,
		migrated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS course_reports (
		course_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		channel TEXT,
		board TEXT,
		medium TEXT,
		grade TEXT,
		subject TEXT,
		status TEXT NOT NULL,
		content JSONB NOT NULL,
		migrated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS assessment_reports (
		assessment_id TEXT NOT NULL,
		title TEXT NOT NULL,
		course_id TEXT,
		max_score DOUBLE PRECISION,
		status TEXT NOT NULL,
		question_set JSONB NOT NULL,
		migrated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_reports (
		attendance_id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		cohort_id TEXT NOT NULL,
		session_date TEXT NOT NULL,
		present BOOLEAN NOT NULL,
		migrated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS cohort_reports (
		cohort_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		member_count INTEGER NOT NULL,
		members JSONB NOT NULL,
		migrated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}
