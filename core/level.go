package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity of a log record.
type Level int8

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable conditions; the library never exits
	// the process on behalf of the simulation
	FatalLevel
)

// String returns the canonical uppercase name of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level (case-insensitive).
// "WARNING" is accepted as an alias for Warn. "TRACE" is not a
// supported level and is rejected.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	default:
		return InfoLevel, errors.Errorf("invalid log level: %q", s)
	}
}

// LevelFromInt maps legacy numeric severity values onto levels:
// 0 and 1 parse as Info, 2 as Warn, 3 as Error, 10 as Debug.
// All other values are rejected.
func LevelFromInt(v int) (Level, error) {
	switch v {
	case 0, 1:
		return InfoLevel, nil
	case 2:
		return WarnLevel, nil
	case 3:
		return ErrorLevel, nil
	case 10:
		return DebugLevel, nil
	default:
		return InfoLevel, errors.Errorf("invalid numeric log level: %d", v)
	}
}

// AtLeast reports whether l meets an inclusive severity threshold.
func (l Level) AtLeast(threshold Level) bool {
	return l >= threshold
}
