package report

import "fmt"

// Status is the closed set of step outcomes.
type Status int

const (
	StatusPending Status = iota
	StatusSkipped
	StatusSuccess
	StatusFailed
	StatusVerifyFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSkipped:
		return "skipped"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	case StatusVerifyFailed:
		return "verify_failed"
	default:
		return "unknown"
	}
}

// MarshalJSON writes the lowercase wire string.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON reads the lowercase wire string.
func (s *Status) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"pending"`:
		*s = StatusPending
	case `"skipped"`:
		*s = StatusSkipped
	case `"success"`:
		*s = StatusSuccess
	case `"failed"`:
		*s = StatusFailed
	case `"verify_failed"`:
		*s = StatusVerifyFailed
	default:
		return fmt.Errorf("unknown step status %s", data)
	}
	return nil
}
