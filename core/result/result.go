package result

import (
	"encoding/json"
	"fmt"
)

// Status classifies the outcome of an extraction attempt.
type Status int

const (
	// StatusSuccess means a structure was located, validated, and (for JSON)
	// decoded without intervention.
	StatusSuccess Status = iota
	// StatusCheck means the result is usable but was produced through an
	// automatic repair, or the candidate was structurally balanced yet failed
	// to decode. Callers should verify before trusting it.
	StatusCheck
	// StatusFail means no usable structure could be recovered.
	StatusFail
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusCheck:
		return "check"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status as its wire name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status from its wire name.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "success":
		*s = StatusSuccess
	case "check":
		*s = StatusCheck
	case "fail":
		*s = StatusFail
	default:
		return fmt.Errorf("unknown status %q", name)
	}
	return nil
}

// Result is the outcome record shared by both extraction engines.
//
// Data is populated only on a positive outcome: every Success, plus the JSON
// engine's single-repair Check. Raw is populated only to aid diagnosis of a
// failed or unresolved attempt and never alongside Data. The one exception is
// a bracket-balanced candidate that fails to decode, which yields Check with
// nil Data and the candidate in Raw.
type Result struct {
	Status   Status `json:"status"`
	Comments string `json:"comments"`
	Data     any    `json:"data"`
	Raw      string `json:"raw,omitempty"`
}

// OK reports whether the extraction fully succeeded.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Success builds a Result carrying an extracted value.
func Success(data any, comments string) Result {
	return Result{Status: StatusSuccess, Comments: comments, Data: data}
}

// Check builds a Result whose value was recovered through a repair and should
// be verified by the caller.
func Check(data any, comments string) Result {
	return Result{Status: StatusCheck, Comments: comments, Data: data}
}

// CheckRaw builds a data-less Check Result carrying the problematic candidate
// text for manual follow-up.
func CheckRaw(raw, comments string) Result {
	return Result{Status: StatusCheck, Comments: comments, Raw: raw}
}

// Fail builds a Result for an attempt that produced no candidate worth
// reporting.
func Fail(comments string) Result {
	return Result{Status: StatusFail, Comments: comments}
}

// FailRaw builds a failed Result carrying a best-effort reconstruction of the
// candidate text that was being examined when the attempt stopped.
func FailRaw(raw, comments string) Result {
	return Result{Status: StatusFail, Comments: comments, Raw: raw}
}
