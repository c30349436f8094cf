package mculog

// Sink is the destination of formatted log lines, e.g. a serial console.
// The Logger borrows the sink and never closes it; the caller must keep it
// alive for the Logger's lifetime.
type Sink interface {
	// WriteLine writes a single log line followed by the sink's own line
	// terminator. p is only valid for the duration of the call and must
	// not be retained.
	WriteLine(p []byte) error
}

// Callback handles log events with their structured parts: the numeric
// level, the level name (e.g. "ERROR"), the original format string, and the
// formatted message without the level prefix.
// The callback is invoked synchronously on the caller's goroutine.
// A nil Callback means unset.
type Callback func(level Level, name, format, message string)
