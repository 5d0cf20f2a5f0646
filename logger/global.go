package logger

import (
	"fmt"

	"github.com/rmmcphai/sim-logger/core"
)

// Get returns the named logger from the default registry.
func Get(name string) *Logger {
	return Default().Get(name)
}

// Root returns the root logger of the default registry.
func Root() *Logger {
	return Get(RootName)
}

// Tag builds a core.Tag; a small convenience for call sites.
func Tag(key, value string) core.Tag {
	return core.Tag{Key: key, Value: value}
}

// SetTimeSource installs the global time source used for record
// timestamps. See core.SetTimeSource.
func SetTimeSource(ts core.TimeSource) {
	core.SetTimeSource(ts)
}

// Package-level convenience functions using the root logger. They sit
// at the same call depth as the Logger methods so captured source
// locations point at the user's call site.

// Debug logs a debug message on the root logger.
func Debug(msg string, tags ...core.Tag) {
	l := Root()
	if !core.DebugLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.DebugLevel, msg, tags)
}

// Info logs an informational message on the root logger.
func Info(msg string, tags ...core.Tag) {
	l := Root()
	if !core.InfoLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.InfoLevel, msg, tags)
}

// Warn logs a warning message on the root logger.
func Warn(msg string, tags ...core.Tag) {
	l := Root()
	if !core.WarnLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.WarnLevel, msg, tags)
}

// Error logs an error message on the root logger.
func Error(msg string, tags ...core.Tag) {
	l := Root()
	if !core.ErrorLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.ErrorLevel, msg, tags)
}

// Fatal logs a fatal message on the root logger without exiting.
func Fatal(msg string, tags ...core.Tag) {
	Root().logAt(core.FatalLevel, msg, tags)
}

// Debugf logs a formatted debug message on the root logger.
func Debugf(format string, args ...interface{}) {
	l := Root()
	if !core.DebugLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs a formatted informational message on the root logger.
func Infof(format string, args ...interface{}) {
	l := Root()
	if !core.InfoLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a formatted warning message on the root logger.
func Warnf(format string, args ...interface{}) {
	l := Root()
	if !core.WarnLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs a formatted error message on the root logger.
func Errorf(format string, args ...interface{}) {
	l := Root()
	if !core.ErrorLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a formatted fatal message on the root logger without
// exiting.
func Fatalf(format string, args ...interface{}) {
	Root().logAt(core.FatalLevel, fmt.Sprintf(format, args...), nil)
}

// Flush flushes the effective sinks of every convenience entry point's
// logger, i.e. the root logger. Loggers with sink overrides flush via
// their own Flush method.
func Flush() {
	Root().Flush()
}
