package source

import (
	"context"
	"database/sql"
	"fmt"
)

// The extraction queries pull the full candidate row set for a job in one
// statement. A failure here is fatal to the run, unlike the per-record
// lookups which degrade to defaults.

// Users returns every legacy user row.
func (s *Store) Users(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT id, first_name, middle_name, last_name, email, phone, status, meta, created_at, updated_at
		FROM users ORDER BY id
	`))
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []User
	for rows.Next() {
		var u User
		var middle, email, phone, meta sql.NullString
		if err := rows.Scan(&u.ID, &u.FirstName, &middle, &u.LastName, &email, &phone, &u.Status, &meta, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.MiddleName = middle.String
		u.Email = email.String
		u.Phone = phone.String
		if meta.Valid {
			u.Meta = []byte(meta.String)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// Courses returns every legacy course row.
func (s *Store) Courses(ctx context.Context) ([]Course, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT id, name, channel, framework, status, created_at
		FROM courses ORDER BY id
	`))
	if err != nil {
		return nil, fmt.Errorf("select courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var courses []Course
	for rows.Next() {
		var c Course
		var channel, framework sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &channel, &framework, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		c.Channel = channel.String
		c.Framework = framework.String
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}
	return courses, nil
}

// Assessments returns every legacy assessment row.
func (s *Store) Assessments(ctx context.Context) ([]Assessment, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT id, title, course_id, max_score, status, created_at
		FROM assessments ORDER BY id
	`))
	if err != nil {
		return nil, fmt.Errorf("select assessments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var assessments []Assessment
	for rows.Next() {
		var a Assessment
		var courseID sql.NullString
		var maxScore sql.NullFloat64
		if err := rows.Scan(&a.ID, &a.Title, &courseID, &maxScore, &a.Status, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assessment: %w", err)
		}
		a.CourseID = courseID.String
		if maxScore.Valid {
			v := maxScore.Float64
			a.MaxScore = &v
		}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessments: %w", err)
	}
	return assessments, nil
}

// Attendance returns every legacy attendance row.
func (s *Store) Attendance(ctx context.Context) ([]Attendance, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT id, user_id, cohort_id, session_date, status
		FROM attendance ORDER BY id
	`))
	if err != nil {
		return nil, fmt.Errorf("select attendance: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Attendance
	for rows.Next() {
		var a Attendance
		if err := rows.Scan(&a.ID, &a.UserID, &a.CohortID, &a.SessionDate, &a.Status); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance: %w", err)
	}
	return records, nil
}

// Cohorts returns every legacy cohort row.
func (s *Store) Cohorts(ctx context.Context) ([]Cohort, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT id, name, type, status, started_at
		FROM cohorts ORDER BY id
	`))
	if err != nil {
		return nil, fmt.Errorf("select cohorts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cohorts []Cohort
	for rows.Next() {
		var c Cohort
		var startedAt sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Status, &startedAt); err != nil {
			return nil, fmt.Errorf("scan cohort: %w", err)
		}
		c.StartedAt = startedAt.String
		cohorts = append(cohorts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cohorts: %w", err)
	}
	return cohorts, nil
}
