package logbridge

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapCallerSkip covers the Zap method and the Dispatcher method or package-level
// function that called it, so entries report the application's call site.
const zapCallerSkip = 2

// NewZap adapts l to the Backend interface. zap has no trace level, so Trace
// records at debug level with a stack trace attached. A nil logger is replaced
// by zap.NewNop(). When l records callers, the reported caller is the code that
// called the Dispatcher, not this adapter.
//
// Example:
//
//	l, _ := zap.NewProduction()
//	SetImplementation(NewZap(l))
func NewZap(l *zap.Logger) *Zap {
	if l == nil {
		l = zap.NewNop()
	}
	skipped := l.WithOptions(zap.AddCallerSkip(zapCallerSkip))
	return &Zap{
		base:  l,
		sugar: skipped.Sugar(),
		trace: skipped.WithOptions(zap.AddStacktrace(zapcore.DebugLevel)).Sugar(),
	}
}

// Logger returns the underlying zap logger.
func (z *Zap) Logger() *zap.Logger {
	return z.base
}

// Sync flushes any buffered entries of the underlying logger.
func (z *Zap) Sync() error {
	return z.base.Sync()
}

// Log records v at zap's info level.
func (z *Zap) Log(v ...interface{}) error {
	z.sugar.Info(v...)
	return nil
}

// Info records v at zap's info level.
func (z *Zap) Info(v ...interface{}) error {
	z.sugar.Info(v...)
	return nil
}

// Warn records v at zap's warn level.
func (z *Zap) Warn(v ...interface{}) error {
	z.sugar.Warn(v...)
	return nil
}

// Error records v at zap's error level.
func (z *Zap) Error(v ...interface{}) error {
	z.sugar.Error(v...)
	return nil
}

// Debug records v at zap's debug level.
func (z *Zap) Debug(v ...interface{}) error {
	z.sugar.Debug(v...)
	return nil
}

// Trace records v at zap's debug level with the caller's stack trace.
func (z *Zap) Trace(v ...interface{}) error {
	z.trace.Debug(v...)
	return nil
}
