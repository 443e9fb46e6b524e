// Package attr normalizes attribute-store values into canonical identifiers.
//
// Producers wrote location references into the generic attribute store in at
// least four shapes over the years: a bare integer, a JSON array wrapping one
// integer, a braced set-literal string such as "{42}", and a plain numeric
// string. NormalizeID collapses all of them into one positive integer id.
package attr

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// Decode interprets a raw attribute-store value. Values that parse as JSON
// are returned decoded (numbers, arrays); everything else is returned as the
// original string. Braced set literals are not valid JSON and stay strings.
func Decode(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err == nil {
		return v
	}
	return trimmed
}

// NormalizeID coerces a value of unknown shape into an identifier usable as
// a foreign key. The ordered rules are: numeric values pass through, array
// values contribute their first element, strings yield their first
// contiguous digit run (or parse whole when fully numeric). Anything else is
// a miss, reported as false with a diagnostic log rather than an error.
func NormalizeID(v any) (int64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case int:
		return int64(val), true
	case int64:
		return val, true
	case float64:
		return int64(val), true
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return n, true
		}
	case []any:
		if len(val) == 0 {
			break
		}
		switch first := val[0].(type) {
		case float64:
			return int64(first), true
		case int64:
			return first, true
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(first), 10, 64); err == nil {
				return n, true
			}
		}
	case string:
		if run := digitRun.FindString(val); run != "" {
			if n, err := strconv.ParseInt(run, 10, 64); err == nil {
				return n, true
			}
		}
		if n, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64); err == nil {
			return n, true
		}
	}
	logrus.WithField("value", v).Debug("attribute value has no extractable id")
	return 0, false
}

// NormalizeRaw decodes a raw stored value and extracts its identifier in one
// step. This is the usual entry point for attribute-store rows.
func NormalizeRaw(raw string) (int64, bool) {
	return NormalizeID(Decode(raw))
}
