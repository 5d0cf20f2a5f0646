package sink

import (
	"sync"

	"github.com/rmmcphai/sim-logger/core"
)

// RecordingSink captures records in memory so tests and harnesses can
// assert on what the pipeline emitted. Safe for concurrent use.
type RecordingSink struct {
	mu      sync.Mutex
	records []core.Record
	flushes int
}

// NewRecordingSink returns an empty recording sink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{}
}

// Write stores a copy of the record.
func (s *RecordingSink) Write(r core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
	return nil
}

// Flush counts the call; there is no buffered output.
func (s *RecordingSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
	return nil
}

// Len returns the number of captured records.
func (s *RecordingSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// FlushCount returns how many times Flush has been called.
func (s *RecordingSink) FlushCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes
}

// Snapshot returns a copy of the captured records.
func (s *RecordingSink) Snapshot() []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Clear discards captured records and resets the flush count.
func (s *RecordingSink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.flushes = 0
}
