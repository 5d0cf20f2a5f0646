package logger

import (
	"github.com/rmmcphai/sim-logger/core"
)

// Level is an alias of core.Level so most callers never need to
// import core directly.
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	FatalLevel = core.FatalLevel
)

// ParseLevel converts a level name to a Level. See core.ParseLevel.
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// LevelFromInt maps legacy numeric severities. See core.LevelFromInt.
func LevelFromInt(v int) (Level, error) {
	return core.LevelFromInt(v)
}
