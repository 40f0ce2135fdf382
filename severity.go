package logbridge

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the lower-case name of the severity level, e.g. "warn".
// Values outside the closed set render as "severity(N)".
func (s Severity) String() string {
	if !s.IsValid() {
		return "severity(" + strconv.FormatUint(uint64(s), 10) + ")"
	}
	return severityNames[s]
}

// IsValid reports whether s is one of the predefined severity levels.
func (s Severity) IsValid() bool {
	return s < numSeverities
}

// Severities returns every predefined severity level in declaration order.
// The returned slice is a fresh copy and may be modified by the caller.
func Severities() []Severity {
	out := make([]Severity, 0, numSeverities)
	for s := Severity(0); s < numSeverities; s++ {
		out = append(out, s)
	}
	return out
}

// ParseSeverity converts a level name into a Severity. Matching ignores case and
// surrounding whitespace, and "default" is accepted as an alias for "log".
//
// Returns:
//   - the matching Severity and a nil error.
//   - an error wrapping ErrUnknownSeverity if the name matches no level.
func ParseSeverity(name string) (Severity, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "default" {
		return LogIssuer, nil
	}
	for i, s := range severityNames {
		if s == n {
			return Severity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSeverity, name)
}
