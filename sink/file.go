package sink

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/rmmcphai/sim-logger/core"
	"github.com/rmmcphai/sim-logger/formatter"
)

// FileSink appends pattern-formatted lines to a single file. Writes go
// through a buffered writer; Flush pushes the buffer to the OS and, in
// durable mode, additionally fsyncs to stable storage.
type FileSink struct {
	mu        sync.Mutex
	path      string
	file      *os.File
	bw        *bufio.Writer
	formatter formatter.Formatter
	durable   bool
}

// FileConfig holds configuration for FileSink.
type FileConfig struct {
	// Path of the log file, opened in append mode and created along
	// with missing parent directories. Required.
	Path string
	// Formatter renders records (default: PatternFormatter with
	// formatter.DefaultPattern).
	Formatter formatter.Formatter
	// Durable makes Flush fsync after flushing the write buffer.
	Durable bool
}

// NewFileSink opens (or creates) the file at cfg.Path for appending.
func NewFileSink(cfg FileConfig) (*FileSink, error) {
	if cfg.Path == "" {
		return nil, errors.New("file sink requires a path")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPatternFormatter("")
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, "create log directory for %q", cfg.Path)
		}
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %q", cfg.Path)
	}

	return &FileSink{
		path:      cfg.Path,
		file:      file,
		bw:        bufio.NewWriter(file),
		formatter: cfg.Formatter,
		durable:   cfg.Durable,
	}, nil
}

// Path returns the file path this sink appends to.
func (s *FileSink) Path() string { return s.path }

// Durable reports whether Flush fsyncs.
func (s *FileSink) Durable() bool { return s.durable }

// Write renders the record and appends exactly one line.
func (s *FileSink) Write(r core.Record) error {
	line := s.formatter.Format(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return errors.Errorf("file sink %q is closed", s.path)
	}
	if _, err := s.bw.WriteString(line); err != nil {
		return errors.Wrapf(err, "write log file %q", s.path)
	}
	if len(line) == 0 || line[len(line)-1] != '\n' {
		if err := s.bw.WriteByte('\n'); err != nil {
			return errors.Wrapf(err, "write log file %q", s.path)
		}
	}
	return nil
}

// Flush pushes buffered bytes to the OS; in durable mode it also
// fsyncs the file.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return errors.Errorf("file sink %q is closed", s.path)
	}
	if err := s.bw.Flush(); err != nil {
		return errors.Wrapf(err, "flush log file %q", s.path)
	}
	if s.durable {
		if err := s.file.Sync(); err != nil {
			return errors.Wrapf(err, "sync log file %q", s.path)
		}
	}
	return nil
}

// Close flushes buffered output and closes the file. Idempotent.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	flushErr := s.bw.Flush()
	closeErr := s.file.Close()
	s.file = nil
	s.bw = nil
	if flushErr != nil {
		return errors.Wrapf(flushErr, "flush log file %q", s.path)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "close log file %q", s.path)
	}
	return nil
}
