package diagnostic

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity classifies a diagnostic. The zero value is SeverityError so that a
// backend omitting the field never downgrades a report.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeveritySuggestion
	SeverityMessage
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeveritySuggestion:
		return "suggestion"
	case SeverityMessage:
		return "message"
	default:
		return "unknown"
	}
}

// IsValid returns true if the severity is one of the defined constants.
func (s Severity) IsValid() bool {
	return s >= SeverityError && s <= SeverityMessage
}

// ParseSeverity converts a severity name to a Severity. Matching is
// case-insensitive.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error", "":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "suggestion", "hint":
		return SeveritySuggestion, nil
	case "message", "info", "information":
		return SeverityMessage, nil
	default:
		return SeverityError, fmt.Errorf("unknown severity %q", name)
	}
}

// MarshalJSON encodes the severity by name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts either a severity name or its numeric value.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		sev := Severity(n)
		if !sev.IsValid() {
			return fmt.Errorf("severity %d out of range", n)
		}
		*s = sev
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("severity must be a string or integer: %w", err)
	}
	sev, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = sev
	return nil
}
