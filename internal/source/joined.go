package source

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sirupsen/logrus"
)

// TenantRole resolves the user's tenant and role by joining the membership
// tables with their reference tables. The first matching row wins; a user
// without a mapping (or a failed query) yields the all-nil TenantRole.
func (s *Store) TenantRole(ctx context.Context, userID string) TenantRole {
	var tr TenantRole
	var tenantID, tenantName, role sql.NullString
	err := s.db.QueryRowContext(ctx, s.bind(`
		SELECT t.id, t.name, r.title
		FROM user_tenants ut
		JOIN tenants t ON t.id = ut.tenant_id
		LEFT JOIN user_roles ur ON ur.user_id = ut.user_id
		LEFT JOIN roles r ON r.id = ur.role_id
		WHERE ut.user_id = ?
		LIMIT 1
	`), userID).Scan(&tenantID, &tenantName, &role)
	if errors.Is(err, sql.ErrNoRows) {
		return tr
	}
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Warn("tenant/role lookup failed")
		return tr
	}
	if tenantID.Valid {
		tr.TenantID = &tenantID.String
	}
	if tenantName.Valid {
		tr.TenantName = &tenantName.String
	}
	if role.Valid {
		tr.Role = &role.String
	}
	return tr
}

// MembershipsOf returns the cohort memberships of one user. Lookup failures
// degrade to an empty list with a warning; the record still migrates with an
// empty cohort list.
func (s *Store) MembershipsOf(ctx context.Context, userID string) []Membership {
	return s.memberships(ctx, `
		SELECT cohort_id, user_id, role, is_automatic
		FROM cohort_members WHERE user_id = ? ORDER BY cohort_id
	`, userID)
}

// MembersOf returns the memberships of one cohort, degrading the same way.
func (s *Store) MembersOf(ctx context.Context, cohortID string) []Membership {
	return s.memberships(ctx, `
		SELECT cohort_id, user_id, role, is_automatic
		FROM cohort_members WHERE cohort_id = ? ORDER BY user_id
	`, cohortID)
}

func (s *Store) memberships(ctx context.Context, query, key string) []Membership {
	rows, err := s.db.QueryContext(ctx, s.bind(query), key)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("membership lookup failed")
		return nil
	}
	defer func() { _ = rows.Close() }()

	var members []Membership
	for rows.Next() {
		var m Membership
		var role sql.NullString
		var automatic int
		if err := rows.Scan(&m.CohortID, &m.UserID, &role, &automatic); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("scan membership")
			return nil
		}
		m.Role = role.String
		m.Automatic = automatic == 1
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("iterate memberships")
		return nil
	}
	return members
}
