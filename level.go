package mculog

import "strconv"

// Level represents the severity of a log message.
// Lower values have higher priority: a message is emitted only when its
// level value is less than or equal to the configured threshold. Values are
// stored as uint8 to support up to 255 levels, though only three are
// predefined.
type Level uint8

const (
	// LevelError is for critical issues.
	LevelError Level = 1
	// LevelInfo is for general status updates.
	LevelInfo Level = 2
	// LevelDebug is for detailed diagnostic information.
	LevelDebug Level = 3
)

// String returns the name of the level.
// Custom levels without a predefined name get a "LEVEL(n)" label so that
// every value has a usable prefix.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
}
