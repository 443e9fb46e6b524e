package source

import (
	"context"

	"github.com/sirupsen/logrus"

	"edumigrate/internal/config"
)

// Location levels keyed by the injected attribute-store field ids. The
// mapping arrives through config rather than literals so the lookup can be
// pointed at fixtures and reused across entity types.

// LocationAttributes returns the raw attribute values stored for the four
// location fields of item, keyed by level name ("state", "district",
// "block", "village"). Missing fields are simply absent from the map; an
// empty item id or a query error degrades to an empty map with a warning.
func (s *Store) LocationAttributes(ctx context.Context, itemID string, fields config.Fields) map[string]string {
	out := map[string]string{}
	if itemID == "" {
		return out
	}
	levels := map[string]string{
		fields.State:    "state",
		fields.District: "district",
		fields.Block:    "block",
		fields.Village:  "village",
	}
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT field_id, value FROM entity_attributes
		WHERE item_id = ? AND field_id IN (?, ?, ?, ?)
	`), itemID, fields.State, fields.District, fields.Block, fields.Village)
	if err != nil {
		logrus.WithError(err).WithField("item_id", itemID).Warn("location attribute lookup failed")
		return out
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var fieldID, value string
		if err := rows.Scan(&fieldID, &value); err != nil {
			logrus.WithError(err).WithField("item_id", itemID).Warn("scan location attribute")
			return map[string]string{}
		}
		if level, ok := levels[fieldID]; ok {
			out[level] = value
		}
	}
	if err := rows.Err(); err != nil {
		logrus.WithError(err).WithField("item_id", itemID).Warn("iterate location attributes")
		return map[string]string{}
	}
	return out
}

// CustomAttributes returns every attribute of item that is not one of the
// location fields, keyed by field id. A lookup failure degrades to an empty
// map with a warning so the record still migrates with custom_fields = {}.
func (s *Store) CustomAttributes(ctx context.Context, itemID string, fields config.Fields) map[string]string {
	out := map[string]string{}
	if itemID == "" {
		return out
	}
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT field_id, value FROM entity_attributes
		WHERE item_id = ? AND field_id NOT IN (?, ?, ?, ?)
	`), itemID, fields.State, fields.District, fields.Block, fields.Village)
	if err != nil {
		logrus.WithError(err).WithField("item_id", itemID).Warn("custom attribute lookup failed")
		return out
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var fieldID, value string
		if err := rows.Scan(&fieldID, &value); err != nil {
			logrus.WithError(err).WithField("item_id", itemID).Warn("scan custom attribute")
			return map[string]string{}
		}
		out[fieldID] = value
	}
	if err := rows.Err(); err != nil {
		logrus.WithError(err).WithField("item_id", itemID).Warn("iterate custom attributes")
		return map[string]string{}
	}
	return out
}
