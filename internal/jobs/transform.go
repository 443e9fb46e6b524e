package jobs

import (
	"encoding/json"
	"strings"

	"edumigrate/internal/attr"
	"edumigrate/internal/source"
)

// fullName joins the three name parts with single spaces and trims the
// edges. An empty middle part leaves a double space between first and last;
// downstream consumers already depend on that legacy shape, so it is kept.
func fullName(first, middle, last string) string {
	return strings.TrimSpace(first + " " + middle + " " + last)
}

// nullable maps "" to nil for nullable text columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// decodeLocationIDs normalizes the raw attribute values for the four
// location levels. Values that fail to normalize are treated as absent.
func decodeLocationIDs(attrs map[string]string) source.LocationIDs {
	var ids source.LocationIDs
	if v, ok := attr.NormalizeRaw(attrs["state"]); ok {
		ids.State = &v
	}
	if v, ok := attr.NormalizeRaw(attrs["district"]); ok {
		ids.District = &v
	}
	if v, ok := attr.NormalizeRaw(attrs["block"]); ok {
		ids.Block = &v
	}
	if v, ok := attr.NormalizeRaw(attrs["village"]); ok {
		ids.Village = &v
	}
	return ids
}

// marshalMemberships renders a cohort membership list as a JSON array,
// degrading to [] so the JSONB column always gets a valid document.
func marshalMemberships(members []source.Membership) json.RawMessage {
	if len(members) == 0 {
		return json.RawMessage(`[]`)
	}
	b, err := json.Marshal(members)
	if err != nil {
		return json.RawMessage(`[]`)
	}
	return b
}

// marshalCustomFields renders the custom attribute map as a JSON object,
// degrading to {} the same way.
func marshalCustomFields(fields map[string]string) json.RawMessage {
	if len(fields) == 0 {
		return json.RawMessage(`{}`)
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return b
}

// anyAutomatic reports whether any membership was platform-created.
func anyAutomatic(members []source.Membership) bool {
	for _, m := range members {
		if m.Automatic {
			return true
		}
	}
	return false
}
