// Package mculog is a lightweight leveled logger for microcontroller
// firmware. It formats printf-style messages into a fixed-size buffer with a
// level prefix and forwards the result to an output sink (e.g. a serial
// console) and/or an application callback.
//
// The package builds both under TinyGo (on-device) and standard Go
// (host-side tools). A Logger is designed for a single execution context and
// performs no locking; callers sharing one instance across goroutines must
// add external synchronization.
package mculog

import (
	"fmt"
)

// DefaultBufferSize is the default size in bytes of the formatting buffer.
// It bounds every log line, level prefix included.
const DefaultBufferSize = 255

// minBufferSize is the smallest accepted buffer size. It leaves room for
// the longest level prefix plus the overflow marker.
const minBufferSize = 32

// overflowMsg replaces the message body when the formatted line would not
// fit the buffer.
const overflowMsg = "message too long"

// Config holds the configuration for a Logger.
type Config struct {
	// Level is the initial severity threshold. Messages with a numeric
	// level above it are suppressed.
	// Defaults to LevelInfo if not provided.
	Level Level
	// BufferSize is the size in bytes of the formatting buffer, bounding
	// every log line including its level prefix. A line is at most
	// BufferSize-1 bytes before the sink's terminator.
	// Minimum: 32.
	// Defaults to DefaultBufferSize (255) if not provided.
	BufferSize int
	// Sink receives formatted log lines.
	// Optional. If not provided (and no Callback is set later), the
	// Logger stays silent.
	Sink Sink
	// Callback receives structured log events.
	// Optional.
	Callback Callback
}

// Logger gates, formats and dispatches textual log lines.
// It is created enabled and lives for the process lifetime; sink and
// callback may be replaced at any time via SetSink, SetCallback or Init.
// Logger is not safe for concurrent use.
type Logger struct {
	level   Level
	enabled bool
	sink    Sink
	cb      Callback
	buf     []byte
}

// New creates a Logger, applying configuration defaults.
func New(c Config) *Logger {
	if c.Level == 0 {
		c.Level = LevelInfo
	}
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.BufferSize < minBufferSize {
		c.BufferSize = minBufferSize
	}
	return &Logger{
		level:   c.Level,
		enabled: true,
		sink:    c.Sink,
		cb:      c.Callback,
		buf:     make([]byte, c.BufferSize),
	}
}

// SetSink stores the sink that receives formatted log lines.
// The sink is borrowed, not owned: the caller must keep it alive for the
// Logger's lifetime and close it if needed. Passing nil detaches the sink.
func (l *Logger) SetSink(s Sink) {
	l.sink = s
}

// SetCallback stores the callback invoked on every emitted log event.
// Passing nil detaches the callback.
func (l *Logger) SetCallback(cb Callback) {
	l.cb = cb
}

// Init stores both a sink and a callback. Either may be nil.
func (l *Logger) Init(s Sink, cb Callback) {
	l.sink = s
	l.cb = cb
}

// SetLevel sets the severity threshold. Any value 1-255 is accepted
// verbatim; no validation against the predefined levels is performed.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// GetLevel returns the current severity threshold.
func (l *Logger) GetLevel() Level {
	return l.level
}

// SetEnabled turns logging on or off. While disabled, every Log call is a
// silent no-op regardless of level; re-enabling restores the previous
// filtering behavior.
func (l *Logger) SetEnabled(enabled bool) {
	l.enabled = enabled
}

// GetEnabled reports whether logging is enabled.
func (l *Logger) GetEnabled() bool {
	return l.enabled
}

// Log formats and dispatches a message at the given level.
// It is a silent no-op when logging is disabled, when level is above the
// current threshold, or when neither a sink nor a callback is configured.
//
// The line is built as "<NAME>: " plus the formatted message, bounded to
// BufferSize-1 bytes. A line that would not fit has its message body
// replaced by "message too long". Sink write errors are not reported back.
func (l *Logger) Log(level Level, format string, args ...any) {
	if !l.enabled || level > l.level || (l.sink == nil && l.cb == nil) {
		return
	}

	name := level.String()
	n := copy(l.buf, name)
	n += copy(l.buf[n:], ": ")

	// Format into the remainder of the buffer. When the result fits, the
	// append stays inside buf and nothing is reallocated.
	out := fmt.Appendf(l.buf[:n], format, args...)
	if len(out) > len(l.buf)-1 {
		out = append(l.buf[:n], overflowMsg...)
	}

	if l.sink != nil {
		l.sink.WriteLine(out)
	}
	if l.cb != nil {
		l.cb(level, name, format, string(out[n:]))
	}
}

// Error logs a message at the error level.
func (l *Logger) Error(format string, args ...any) {
	l.Log(LevelError, format, args...)
}

// Info logs a message at the info level.
func (l *Logger) Info(format string, args ...any) {
	l.Log(LevelInfo, format, args...)
}

// Debug logs a message at the debug level.
func (l *Logger) Debug(format string, args ...any) {
	l.Log(LevelDebug, format, args...)
}

// std is the process-wide default Logger used by the package-level
// functions. It starts with no sink and no callback, so it stays silent
// until configured.
var std = New(Config{})

// Default returns the process-wide Logger used by the package-level
// functions.
func Default() *Logger {
	return std
}

// Init configures the default Logger with a sink and a callback.
// Either may be nil.
func Init(s Sink, cb Callback) { std.Init(s, cb) }

// SetSink sets the sink of the default Logger.
func SetSink(s Sink) { std.SetSink(s) }

// SetCallback sets the callback of the default Logger.
func SetCallback(cb Callback) { std.SetCallback(cb) }

// SetLevel sets the severity threshold of the default Logger.
func SetLevel(level Level) { std.SetLevel(level) }

// GetLevel returns the severity threshold of the default Logger.
func GetLevel() Level { return std.GetLevel() }

// SetEnabled turns the default Logger on or off.
func SetEnabled(enabled bool) { std.SetEnabled(enabled) }

// GetEnabled reports whether the default Logger is enabled.
func GetEnabled() bool { return std.GetEnabled() }

// Log logs a message on the default Logger.
func Log(level Level, format string, args ...any) { std.Log(level, format, args...) }

// Error logs an error message on the default Logger.
func Error(format string, args ...any) { std.Error(format, args...) }

// Info logs an info message on the default Logger.
func Info(format string, args ...any) { std.Info(format, args...) }

// Debug logs a debug message on the default Logger.
func Debug(format string, args ...any) { std.Debug(format, args...) }
