package sink

import (
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rmmcphai/sim-logger/core"
	"github.com/rmmcphai/sim-logger/formatter"
)

// RotatingFileSink appends pattern-formatted lines to a file that
// rotates by size, keeping a bounded number of backups. The rotation
// mechanics are delegated to lumberjack.
type RotatingFileSink struct {
	mu        sync.Mutex
	out       *lumberjack.Logger
	formatter formatter.Formatter
}

// RotatingFileConfig holds configuration for RotatingFileSink.
type RotatingFileConfig struct {
	// Path of the active log file. Required.
	Path string
	// Formatter renders records (default: PatternFormatter with
	// formatter.DefaultPattern).
	Formatter formatter.Formatter
	// MaxSizeMB is the size at which the file rotates, in megabytes
	// (default 10).
	MaxSizeMB int
	// MaxBackups is how many rotated files to retain (0 keeps all).
	MaxBackups int
	// MaxAgeDays removes rotated files older than this (0 keeps all).
	MaxAgeDays int
	// Compress gzips rotated files.
	Compress bool
}

// NewRotatingFileSink creates a size-rotating file sink.
func NewRotatingFileSink(cfg RotatingFileConfig) (*RotatingFileSink, error) {
	if cfg.Path == "" {
		return nil, errors.New("rotating file sink requires a path")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPatternFormatter("")
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}

	return &RotatingFileSink{
		out: &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		},
		formatter: cfg.Formatter,
	}, nil
}

// Write renders the record and appends exactly one line, rotating the
// file first when it would exceed the size limit.
func (s *RotatingFileSink) Write(r core.Record) error {
	line := s.formatter.Format(r)
	if len(line) == 0 || line[len(line)-1] != '\n' {
		line += "\n"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.out.Write([]byte(line)); err != nil {
		return errors.Wrapf(err, "write rotating log %q", s.out.Filename)
	}
	return nil
}

// Flush is a no-op: lumberjack writes through to the file on every
// Write.
func (s *RotatingFileSink) Flush() error { return nil }

// Rotate forces a rotation regardless of the current file size.
func (s *RotatingFileSink) Rotate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.Rotate()
}

// Close closes the active file. Idempotent.
func (s *RotatingFileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.Close()
}
