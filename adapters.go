package logbridge

// Discard is a Backend on which every operation does nothing.
var Discard Backend = discard{}

type discard struct{}

func (discard) Log(...interface{}) error   { return nil }
func (discard) Info(...interface{}) error  { return nil }
func (discard) Warn(...interface{}) error  { return nil }
func (discard) Error(...interface{}) error { return nil }
func (discard) Debug(...interface{}) error { return nil }
func (discard) Trace(...interface{}) error { return nil }

// Log calls f with LogIssuer.
func (f BackendFunc) Log(v ...interface{}) error { return f(LogIssuer, v...) }

// Info calls f with InfoIssuer.
func (f BackendFunc) Info(v ...interface{}) error { return f(InfoIssuer, v...) }

// Warn calls f with WarnIssuer.
func (f BackendFunc) Warn(v ...interface{}) error { return f(WarnIssuer, v...) }

// Error calls f with ErrorIssuer.
func (f BackendFunc) Error(v ...interface{}) error { return f(ErrorIssuer, v...) }

// Debug calls f with DebugIssuer.
func (f BackendFunc) Debug(v ...interface{}) error { return f(DebugIssuer, v...) }

// Trace calls f with TraceIssuer.
func (f BackendFunc) Trace(v ...interface{}) error { return f(TraceIssuer, v...) }
