package logbridge

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// maxTraceDepth bounds the number of stack frames written by Console.Trace.
const maxTraceDepth = 32

// NewConsole creates the default Backend, writing to os.Stdout and os.Stderr
// unless overridden by options.
//
// Example:
//
//	var buf bytes.Buffer
//	c := NewConsole(WithStdout(&buf), WithStderr(&buf))
func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithStdout returns a ConsoleOption that sets the writer used for log, info and debug.
// A nil writer is ignored.
func WithStdout(w io.Writer) ConsoleOption {
	return func(c *Console) {
		if w != nil {
			c.stdout = w
		}
	}
}

// WithStderr returns a ConsoleOption that sets the writer used for warn, error and trace.
// A nil writer is ignored.
func WithStderr(w io.Writer) ConsoleOption {
	return func(c *Console) {
		if w != nil {
			c.stderr = w
		}
	}
}

// UpdateWriter safely replaces the writer behind stream.
// If both the current writer and the new writer implement the locker interface but are not the same,
// the update is rejected (returns false) to avoid locking mismatches. Otherwise, the writer is updated.
// The function locks the current writer (if possible) during the update to ensure thread safety.
//
// Parameters:
//   - stream: Stdout or Stderr.
//   - w: the new io.Writer to use for that stream.
//
// Returns:
//   - true if the writer was successfully updated.
//   - false if w is nil, stream is unknown, or the locking behavior is incompatible.
func (c *Console) UpdateWriter(stream Stream, w io.Writer) bool {
	if w == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var target *io.Writer
	switch stream {
	case Stdout:
		target = &c.stdout
	case Stderr:
		target = &c.stderr
	default:
		return false
	}
	currentLocker, hasLock := (*target).(locker)
	newLocker, newHasLock := w.(locker)
	if hasLock && newHasLock && currentLocker != newLocker {
		return false
	}
	if hasLock {
		currentLocker.Lock()
		defer currentLocker.Unlock()
	}
	*target = w
	return true
}

// Log writes v to the standard output writer.
func (c *Console) Log(v ...interface{}) error {
	return c.write(Stdout, fmt.Sprintln(v...))
}

// Info writes v to the standard output writer.
func (c *Console) Info(v ...interface{}) error {
	return c.write(Stdout, fmt.Sprintln(v...))
}

// Warn writes v to the standard error writer.
func (c *Console) Warn(v ...interface{}) error {
	return c.write(Stderr, fmt.Sprintln(v...))
}

// Error writes v to the standard error writer.
func (c *Console) Error(v ...interface{}) error {
	return c.write(Stderr, fmt.Sprintln(v...))
}

// Debug writes v to the standard output writer.
func (c *Console) Debug(v ...interface{}) error {
	return c.write(Stdout, fmt.Sprintln(v...))
}

// Trace writes v to the standard error writer, prefixed with "Trace: " and
// followed by the stack of the calling goroutine, one frame per two lines.
func (c *Console) Trace(v ...interface{}) error {
	var b strings.Builder
	b.Grow(512)
	if len(v) == 0 {
		b.WriteString("Trace\n")
	} else {
		b.WriteString("Trace: ")
		b.WriteString(fmt.Sprintln(v...))
	}

	// Skip runtime.Callers and Console.Trace itself.
	pcs := make([]uintptr, maxTraceDepth)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for n > 0 {
		frame, more := frames.Next()
		b.WriteString(frame.Function)
		b.WriteString("\n\t")
		b.WriteString(frame.File)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(frame.Line))
		b.WriteByte('\n')
		if !more {
			break
		}
	}
	return c.write(Stderr, b.String())
}

// write emits line with a single call on the writer behind stream,
// locking the writer if it supports it.
func (c *Console) write(stream Stream, line string) error {
	c.mu.RLock()
	w := c.stdout
	if stream == Stderr {
		w = c.stderr
	}
	c.mu.RUnlock()

	if lock, ok := w.(locker); ok {
		lock.Lock()
		defer lock.Unlock()
	}
	_, err := io.WriteString(w, line)
	return err
}
