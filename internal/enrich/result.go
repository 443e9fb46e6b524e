// Package enrich fetches supplementary data for records being migrated from
// the remote content API. Every lookup is best effort: transport failures,
// non-2xx statuses and absent payload fields all degrade to an empty Result
// so a single bad lookup can never abort a batch.
package enrich

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Result is one enrichment payload: the nested fragment extracted from an
// API response (result.content, result.QuestionSet, ...). A lookup miss is
// the zero Result, never an error.
type Result struct {
	raw []byte
}

// NewResult wraps a payload fragment. Used directly by tests and fixtures.
func NewResult(raw []byte) Result {
	return Result{raw: raw}
}

// Empty reports whether the lookup produced no payload.
func (r Result) Empty() bool {
	return len(r.raw) == 0
}

// Raw returns the full payload fragment, or nil on a miss. The transformer
// persists this verbatim so no payload information is silently dropped.
func (r Result) Raw() []byte {
	return r.raw
}

// JSON returns the payload as a JSON document, substituting the given
// fallback (e.g. "{}" or "[]") on a miss so JSON-typed destination columns
// always receive a valid value.
func (r Result) JSON(fallback string) json.RawMessage {
	if r.Empty() {
		return json.RawMessage(fallback)
	}
	return json.RawMessage(r.raw)
}

// String returns the string value at path, or "" when absent.
func (r Result) String(path string) string {
	if r.Empty() {
		return ""
	}
	return gjson.GetBytes(r.raw, path).String()
}

// First returns the scalar projection of the field at path: the first
// element when the field is array-shaped, otherwise the field itself.
// Destination columns are scalar even where the API reports lists.
func (r Result) First(path string) string {
	if r.Empty() {
		return ""
	}
	v := gjson.GetBytes(r.raw, path)
	if !v.Exists() && gjson.ParseBytes(r.raw).IsArray() {
		// Array-rooted payloads (e.g. a search result list) project
		// through their first element.
		v = gjson.GetBytes(r.raw, "0."+path)
	}
	if v.IsArray() {
		arr := v.Array()
		if len(arr) == 0 {
			return ""
		}
		return arr[0].String()
	}
	return v.String()
}

// Float returns the numeric value at path, or 0 when absent.
func (r Result) Float(path string) float64 {
	if r.Empty() {
		return 0
	}
	return gjson.GetBytes(r.raw, path).Float()
}
