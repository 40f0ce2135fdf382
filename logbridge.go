// Package logbridge provides a pluggable logging facade: six severity-leveled entry
// points that forward to a swappable Backend, gated by runtime enable/disable switches.
//
// Key features:
//   - Six severity levels (log, info, warn, error, debug, trace)
//   - Any value satisfying Backend can be installed at runtime
//   - Global and per-level disabling, independent of each other
//   - Arguments are forwarded verbatim; suppressed calls are silent no-ops
//   - Package-level default dispatcher and independent instances
package logbridge

import (
	"fmt"
	"sort"
)

// New creates a Dispatcher with logging enabled, no level disabled and a Console
// backend writing to os.Stdout and os.Stderr. Options are applied afterwards.
//
// Parameters:
//   - opts: a variadic slice of Option functions (e.g., WithBackend, WithDisabledLevels).
//
// Panics:
//   - if WithBackend is given a nil backend.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		impl:           NewConsole(),
		disabledLevels: make(map[Severity]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithBackend returns an Option that installs b instead of the default Console.
//
// Example:
//
//	d := New(WithBackend(NewZap(zapLogger)))
func WithBackend(b Backend) Option {
	return func(d *Dispatcher) {
		d.SetImplementation(b)
	}
}

// WithDisabled returns an Option that creates the Dispatcher with all logging disabled.
func WithDisabled() Option {
	return func(d *Dispatcher) {
		d.disabled = true
	}
}

// WithDisabledLevels returns an Option that creates the Dispatcher with the given levels disabled.
//
// Example:
//
//	d := New(WithDisabledLevels(DebugIssuer, TraceIssuer))
func WithDisabledLevels(levels ...Severity) Option {
	return func(d *Dispatcher) {
		for _, level := range levels {
			d.DisableLevel(level)
		}
	}
}

// SetImplementation replaces the active backend. Calls made afterwards are routed
// to b only; the previous backend is released without any teardown.
//
// Panics:
//   - if b is a nil interface. A typed nil pointer such as (*Console)(nil) is
//     accepted and panics later, when a call reaches it.
func (d *Dispatcher) SetImplementation(b Backend) {
	if b == nil {
		panic("logbridge: nil backend")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.impl = b
}

// Implementation returns the active backend.
func (d *Dispatcher) Implementation() Backend {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.impl
}

// Disable turns all logging off. Per-level settings are kept as they are.
func (d *Dispatcher) Disable() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disabled = true
}

// Enable turns logging back on. Levels disabled with DisableLevel stay disabled.
func (d *Dispatcher) Enable() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disabled = false
}

// DisableLevel suppresses a single severity level. Invalid levels are ignored.
func (d *Dispatcher) DisableLevel(level Severity) {
	if !level.IsValid() {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disabledLevels[level] = struct{}{}
}

// EnableLevel lifts the suppression of a single severity level.
func (d *Dispatcher) EnableLevel(level Severity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.disabledLevels, level)
}

// IsDisabled reports whether all logging is turned off.
func (d *Dispatcher) IsDisabled() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.disabled
}

// IsLevelDisabled reports whether level was disabled with DisableLevel,
// regardless of the global switch.
func (d *Dispatcher) IsLevelDisabled(level Severity) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.disabledLevels[level]
	return ok
}

// IsEnabled reports whether a call at level would currently be forwarded.
func (d *Dispatcher) IsEnabled(level Severity) bool {
	_, ok := d.backendFor(level)
	return ok
}

// DisabledLevels returns the individually disabled levels in ascending order.
func (d *Dispatcher) DisabledLevels() []Severity {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Severity, 0, len(d.disabledLevels))
	for level := range d.disabledLevels {
		out = append(out, level)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// backendFor evaluates the gate for level and returns the backend to call.
// The lock is released before the backend runs, so a backend may call back
// into the Dispatcher.
func (d *Dispatcher) backendFor(level Severity) (Backend, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.disabled {
		return nil, false
	}
	if _, off := d.disabledLevels[level]; off {
		return nil, false
	}
	return d.impl, true
}

// Dispatch forwards v to the backend operation matching level if that level is
// currently enabled. It returns the backend's error unchanged, or nil when the
// call is suppressed.
//
// Returns:
//   - an error wrapping ErrUnknownSeverity if level is not a predefined severity.
//   - the backend's error, if any; otherwise nil.
func (d *Dispatcher) Dispatch(level Severity, v ...interface{}) error {
	if !level.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownSeverity, level)
	}
	b, ok := d.backendFor(level)
	if !ok {
		return nil
	}
	// Backends run exactly two frames below the caller; Zap's caller skip relies on it.
	switch level {
	case LogIssuer:
		return b.Log(v...)
	case InfoIssuer:
		return b.Info(v...)
	case WarnIssuer:
		return b.Warn(v...)
	case ErrorIssuer:
		return b.Error(v...)
	case DebugIssuer:
		return b.Debug(v...)
	default:
		return b.Trace(v...)
	}
}

// Log records v at the default level.
//
// Example:
//
//	d.Log("listening on", addr)
func (d *Dispatcher) Log(v ...interface{}) error {
	if b, ok := d.backendFor(LogIssuer); ok {
		return b.Log(v...)
	}
	return nil
}

// Info records v at the informational level.
func (d *Dispatcher) Info(v ...interface{}) error {
	if b, ok := d.backendFor(InfoIssuer); ok {
		return b.Info(v...)
	}
	return nil
}

// Warn records v at the warning level.
func (d *Dispatcher) Warn(v ...interface{}) error {
	if b, ok := d.backendFor(WarnIssuer); ok {
		return b.Warn(v...)
	}
	return nil
}

// Error records v at the error level.
func (d *Dispatcher) Error(v ...interface{}) error {
	if b, ok := d.backendFor(ErrorIssuer); ok {
		return b.Error(v...)
	}
	return nil
}

// Debug records v at the debugging level.
func (d *Dispatcher) Debug(v ...interface{}) error {
	if b, ok := d.backendFor(DebugIssuer); ok {
		return b.Debug(v...)
	}
	return nil
}

// Trace records v at the tracing level.
func (d *Dispatcher) Trace(v ...interface{}) error {
	if b, ok := d.backendFor(TraceIssuer); ok {
		return b.Trace(v...)
	}
	return nil
}

// SetImplementation replaces the backend of the package-level Default dispatcher.
func SetImplementation(b Backend) {
	Default.SetImplementation(b)
}

// Disable turns all logging off on the Default dispatcher.
func Disable() {
	Default.Disable()
}

// Enable turns logging back on for the Default dispatcher.
func Enable() {
	Default.Enable()
}

// DisableLevel suppresses level on the Default dispatcher.
func DisableLevel(level Severity) {
	Default.DisableLevel(level)
}

// EnableLevel lifts the suppression of level on the Default dispatcher.
func EnableLevel(level Severity) {
	Default.EnableLevel(level)
}

// Log records v at the default level using the package-level Default dispatcher.
func Log(v ...interface{}) error {
	if b, ok := Default.backendFor(LogIssuer); ok {
		return b.Log(v...)
	}
	return nil
}

// Info records v at the informational level using the package-level Default dispatcher.
func Info(v ...interface{}) error {
	if b, ok := Default.backendFor(InfoIssuer); ok {
		return b.Info(v...)
	}
	return nil
}

// Warn records v at the warning level using the package-level Default dispatcher.
func Warn(v ...interface{}) error {
	if b, ok := Default.backendFor(WarnIssuer); ok {
		return b.Warn(v...)
	}
	return nil
}

// Error records v at the error level using the package-level Default dispatcher.
func Error(v ...interface{}) error {
	if b, ok := Default.backendFor(ErrorIssuer); ok {
		return b.Error(v...)
	}
	return nil
}

// Debug records v at the debugging level using the package-level Default dispatcher.
func Debug(v ...interface{}) error {
	if b, ok := Default.backendFor(DebugIssuer); ok {
		return b.Debug(v...)
	}
	return nil
}

// Trace records v at the tracing level using the package-level Default dispatcher.
func Trace(v ...interface{}) error {
	if b, ok := Default.backendFor(TraceIssuer); ok {
		return b.Trace(v...)
	}
	return nil
}
