package logger

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/rmmcphai/sim-logger/core"
	"github.com/rmmcphai/sim-logger/sink"
)

// Logger is a node in the logger tree. All configuration is guarded by
// a single mutex; Log is safe to call concurrently.
//
// Level, sinks, and immediate flush each carry an override flag: while
// unset, the effective value is inherited from the parent (or a local
// default at the root: Info, no sinks, no immediate flush).
type Logger struct {
	name string

	mu                sync.Mutex
	level             core.Level
	levelOverridden   bool
	sinks             []sink.Sink
	sinksOverridden   bool
	immediate         bool
	immediateOverride bool
	parent            *Logger
	limiter           *rate.Limiter

	dropped  atomic.Uint64
	failures atomic.Uint64
}

// newLogger is used by Registry; loggers are always obtained through a
// registry so parent links stay consistent.
func newLogger(name string) *Logger {
	return &Logger{name: name, level: core.InfoLevel}
}

// Name returns the logger's full dotted name.
func (l *Logger) Name() string { return l.name }

// Parent returns the parent logger, or nil at the root.
func (l *Logger) Parent() *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.parent
}

func (l *Logger) setParent(p *Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.parent = p
}

// SetLevel overrides this logger's severity threshold. Once set,
// EffectiveLevel ignores the parent until ClearLevelOverride.
func (l *Logger) SetLevel(level core.Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.levelOverridden = true
}

// ClearLevelOverride reverts to inheriting the level from the parent.
func (l *Logger) ClearLevelOverride() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.levelOverridden = false
}

// EffectiveLevel returns the threshold used for filtering: the local
// override if set, else the parent's effective level, else the local
// default.
func (l *Logger) EffectiveLevel() core.Level {
	l.mu.Lock()
	overridden, level, parent := l.levelOverridden, l.level, l.parent
	l.mu.Unlock()

	if overridden || parent == nil {
		return level
	}
	return parent.EffectiveLevel()
}

// AddSink appends a sink to this logger's override list, enabling sink
// override mode.
func (l *Logger) AddSink(s sink.Sink) {
	if s == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, s)
	l.sinksOverridden = true
}

// SetSinks replaces this logger's sink override list.
func (l *Logger) SetSinks(sinks []sink.Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append([]sink.Sink(nil), sinks...)
	l.sinksOverridden = true
}

// ClearSinkOverride reverts to inheriting sinks from the parent.
func (l *Logger) ClearSinkOverride() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinksOverridden = false
	l.sinks = nil
}

// EffectiveSinks returns the sinks a record would be routed to. The
// returned slice is a copy.
func (l *Logger) EffectiveSinks() []sink.Sink {
	l.mu.Lock()
	overridden, parent := l.sinksOverridden, l.parent
	sinks := append([]sink.Sink(nil), l.sinks...)
	l.mu.Unlock()

	if overridden || parent == nil {
		return sinks
	}
	return parent.EffectiveSinks()
}

// SetImmediateFlush overrides whether every accepted record is
// followed by a sink flush.
func (l *Logger) SetImmediateFlush(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.immediate = enabled
	l.immediateOverride = true
}

// ClearImmediateFlushOverride reverts to inheriting the flag from the
// parent.
func (l *Logger) ClearImmediateFlushOverride() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.immediateOverride = false
}

// EffectiveImmediateFlush returns the flush-per-record flag after
// inheritance.
func (l *Logger) EffectiveImmediateFlush() bool {
	l.mu.Lock()
	overridden, v, parent := l.immediateOverride, l.immediate, l.parent
	l.mu.Unlock()

	if overridden || parent == nil {
		return v
	}
	return parent.EffectiveImmediateFlush()
}

// SetRateLimit caps how many records per second this logger accepts;
// records beyond the cap are counted as dropped. perSecond <= 0
// removes the cap.
func (l *Logger) SetRateLimit(perSecond int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if perSecond <= 0 {
		l.limiter = nil
		return
	}
	l.limiter = rate.NewLimiter(rate.Limit(perSecond), perSecond)
}

// Log routes a record to every effective sink if it passes level
// filtering and the rate limit. Sink errors and panics are contained
// and counted in SinkFailures; Log itself never fails.
func (l *Logger) Log(r core.Record) {
	l.mu.Lock()
	limiter := l.limiter
	l.mu.Unlock()
	if limiter != nil && !limiter.Allow() {
		l.dropped.Add(1)
		return
	}

	if !r.Level.AtLeast(l.EffectiveLevel()) {
		return
	}

	sinks := l.EffectiveSinks()
	doFlush := l.EffectiveImmediateFlush()
	for _, s := range sinks {
		l.emit(s, r, doFlush)
	}
}

// emit writes to one sink with failure containment; a write failure
// skips that sink's flush but not the remaining sinks.
func (l *Logger) emit(s sink.Sink, r core.Record, flush bool) {
	defer func() {
		if recover() != nil {
			l.failures.Add(1)
		}
	}()
	if err := s.Write(r); err != nil {
		l.failures.Add(1)
		return
	}
	if flush {
		if err := s.Flush(); err != nil {
			l.failures.Add(1)
		}
	}
}

// Flush flushes every effective sink, containing failures.
func (l *Logger) Flush() {
	for _, s := range l.EffectiveSinks() {
		l.flushSink(s)
	}
}

func (l *Logger) flushSink(s sink.Sink) {
	defer func() {
		if recover() != nil {
			l.failures.Add(1)
		}
	}()
	if err := s.Flush(); err != nil {
		l.failures.Add(1)
	}
}

// DroppedRecords returns how many records this logger rejected at its
// rate limit. Monotonic; safe to read concurrently.
func (l *Logger) DroppedRecords() uint64 { return l.dropped.Load() }

// SinkFailures returns how many sink write or flush failures were
// contained. Monotonic; safe to read concurrently.
func (l *Logger) SinkFailures() uint64 { return l.failures.Load() }

// captureSkip is the runtime.Caller depth from core.Capture up to the
// user's call site through logAt and one exported level method.
const captureSkip = 3

func (l *Logger) logAt(level core.Level, msg string, tags []core.Tag) {
	l.Log(core.Capture(level, l.name, tags, msg, captureSkip))
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, tags ...core.Tag) {
	if !core.DebugLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.DebugLevel, msg, tags)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, tags ...core.Tag) {
	if !core.InfoLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.InfoLevel, msg, tags)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, tags ...core.Tag) {
	if !core.WarnLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.WarnLevel, msg, tags)
}

// Error logs an error message.
func (l *Logger) Error(msg string, tags ...core.Tag) {
	if !core.ErrorLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.ErrorLevel, msg, tags)
}

// Fatal logs a fatal message. The library never exits the process; the
// simulation owns its own shutdown.
func (l *Logger) Fatal(msg string, tags ...core.Tag) {
	l.logAt(core.FatalLevel, msg, tags)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !core.DebugLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, args ...interface{}) {
	if !core.InfoLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if !core.WarnLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !core.ErrorLevel.AtLeast(l.EffectiveLevel()) {
		return
	}
	l.logAt(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a formatted fatal message without exiting.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logAt(core.FatalLevel, fmt.Sprintf(format, args...), nil)
}
