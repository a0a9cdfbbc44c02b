package models

import "github.com/tidwall/gjson"

// QueryResult is a successful gateway response
type QueryResult struct {
	// SQL is the generated query text
	SQL string
	// Result is the raw JSON of the "result" field, empty when the field
	// was absent or null
	Result string
	// Message is the optional status text sent instead of a result
	Message string
}

// HasResult reports whether the response carried a usable result.
// null, false, zero and the empty string count as absent; empty arrays
// and objects still count as a result.
func (r *QueryResult) HasResult() bool {
	if r == nil || r.Result == "" {
		return false
	}

	v := gjson.Parse(r.Result)
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	default:
		return true
	}
}

// Status returns the text shown when there is no result
func (r *QueryResult) Status() string {
	if r == nil || r.Message == "" {
		return DefaultSuccessMessage
	}
	return r.Message
}
