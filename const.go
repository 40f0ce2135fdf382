package logbridge

import "errors"

// Predefined severity levels for logging.
const (
	// LogIssuer is the default logging level for general output
	LogIssuer Severity = iota

	// InfoIssuer indicates normal operational messages for tracking progress
	InfoIssuer

	// WarnIssuer signifies potential issues that don't disrupt core functionality
	WarnIssuer

	// ErrorIssuer denotes failures in specific operations or components
	ErrorIssuer

	// DebugIssuer represents debug-level messages for development diagnostics
	DebugIssuer

	// TraceIssuer represents fine-grained messages carrying the caller's stack
	TraceIssuer

	numSeverities
)

// Output streams used by the Console backend.
const (
	Stdout Stream = iota
	Stderr
)

// ErrUnknownSeverity is returned when a severity name or value is outside the closed set.
var ErrUnknownSeverity = errors.New("logbridge: unknown severity")

var severityNames = [numSeverities]string{"log", "info", "warn", "error", "debug", "trace"}

// Default is a pre-configured Dispatcher intended for general use.
// It forwards to a Console backend writing to os.Stdout and os.Stderr,
// with every severity level enabled.
var Default = New()
