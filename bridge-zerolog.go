//go:build !tinygo

package mculog

import (
	"github.com/rs/zerolog"
)

// ZerologCallback returns a Callback that forwards log events to a
// zerolog.Logger. It lets host-side tools route firmware log events into
// their own structured logging instead of (or next to) a text sink.
//
// The predefined levels map to the matching zerolog levels; custom levels
// are forwarded without a zerolog level. The numeric level and the original
// format string travel as the "severity" and "format" fields.
func ZerologCallback(zl zerolog.Logger) Callback {
	return func(level Level, name, format, message string) {
		zl.WithLevel(zerologLevel(level)).
			Uint8("severity", uint8(level)).
			Str("format", format).
			Msg(message)
	}
}

func zerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelError:
		return zerolog.ErrorLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.NoLevel
	}
}
