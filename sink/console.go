package sink

import (
	"io"
	"os"
	"sync"

	"github.com/rmmcphai/sim-logger/core"
	"github.com/rmmcphai/sim-logger/formatter"
)

// ColorMode controls ANSI coloring of console output.
type ColorMode int8

const (
	// ColorAuto enables colors only when the writer is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways emits ANSI escape sequences unconditionally.
	ColorAlways
	// ColorNever disables ANSI escape sequences.
	ColorNever
)

const ansiReset = "\x1b[0m"

// ConsoleSink writes pattern-formatted lines to an io.Writer, stdout
// by default, with optional severity coloring. Output is serialized by
// an internal mutex so lines from concurrent writers never interleave.
type ConsoleSink struct {
	mu        sync.Mutex
	w         io.Writer
	formatter formatter.Formatter
	colorMode ColorMode
	isTTY     bool
}

// ConsoleConfig holds configuration for ConsoleSink.
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout).
	Writer io.Writer
	// Formatter renders records (default: PatternFormatter with
	// formatter.DefaultPattern).
	Formatter formatter.Formatter
	// ColorMode selects coloring behavior (default: ColorAuto).
	ColorMode ColorMode
}

// NewConsoleSink creates a console sink.
func NewConsoleSink(cfg ConsoleConfig) *ConsoleSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPatternFormatter("")
	}
	return &ConsoleSink{
		w:         cfg.Writer,
		formatter: cfg.Formatter,
		colorMode: cfg.ColorMode,
		isTTY:     writerIsTerminal(cfg.Writer),
	}
}

// Write renders the record and emits exactly one line.
func (s *ConsoleSink) Write(r core.Record) error {
	line := s.formatter.Format(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	var prefix string
	if s.colorizeLocked() {
		prefix = ansiPrefixFor(r.Level)
	}
	if prefix != "" {
		if _, err := io.WriteString(s.w, prefix); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(s.w, line); err != nil {
		return err
	}

	if prefix != "" {
		if _, err := io.WriteString(s.w, ansiReset); err != nil {
			return err
		}
	}
	if len(line) == 0 || line[len(line)-1] != '\n' {
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Flush forwards to the writer when it exposes buffered-flush or sync
// semantics; plain writers need nothing.
func (s *ConsoleSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

func (s *ConsoleSink) colorizeLocked() bool {
	switch s.colorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return s.isTTY
	}
}

// ansiPrefixFor maps severity to conventional colors: yellow for Warn,
// red for Error and Fatal, dim gray for Debug.
func ansiPrefixFor(level core.Level) string {
	switch level {
	case core.WarnLevel:
		return "\x1b[33m"
	case core.ErrorLevel, core.FatalLevel:
		return "\x1b[31m"
	case core.DebugLevel:
		return "\x1b[90m"
	default:
		return ""
	}
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
