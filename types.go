package logbridge

import (
	"io"
	"sync"

	"go.uber.org/zap"
)

// Severity identifies one of the fixed logging levels.
type Severity uint32

// Backend is the capability set every pluggable logging implementation must expose:
// one variadic operation per severity level. Values are opaque and must be
// recorded as given. A returned error is handed back to the caller unchanged.
type Backend interface {
	Log(v ...interface{}) error
	Info(v ...interface{}) error
	Warn(v ...interface{}) error
	Error(v ...interface{}) error
	Debug(v ...interface{}) error
	Trace(v ...interface{}) error
}

// Dispatcher holds the active Backend and decides, per call, whether to forward
// or drop it. Logging can be switched off globally and per severity level; the
// two switches are independent of each other.
type Dispatcher struct {
	mu             sync.RWMutex
	impl           Backend               // Active backend receiving forwarded calls.
	disabled       bool                  // If true, every call is dropped.
	disabledLevels map[Severity]struct{} // Levels dropped regardless of the global flag.
}

// Option defines a functional option for configuring a Dispatcher during creation.
type Option func(*Dispatcher)

// Stream selects one of the Console backend's output writers.
type Stream int

// Console is the default Backend. It mirrors a terminal console: log, info and
// debug go to the standard output writer; warn, error and trace go to the
// standard error writer.
type Console struct {
	mu     sync.RWMutex
	stdout io.Writer
	stderr io.Writer
}

// ConsoleOption defines a functional option for configuring a Console during creation.
type ConsoleOption func(*Console)

// Zap is a Backend that forwards to a zap logger.
type Zap struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
	trace *zap.SugaredLogger // Same core as sugar, with a stack trace attached.
}

// BackendFunc adapts a single function to the Backend interface. Each operation
// calls the function with its own severity and the values unchanged.
type BackendFunc func(level Severity, v ...interface{}) error

// locker is an interface that defines basic locking operations.
// If an io.Writer implements this interface, it can be locked during writes to ensure thread safety.
type locker interface {
	Lock()
	Unlock()
}
