package core

import (
	"sync"
	"sync/atomic"
)

// TimeSource supplies the three timestamps stored in every record.
// Implementations must be safe for concurrent use; all three methods
// are side-effect-free reads.
type TimeSource interface {
	// SimTime returns simulation time in seconds.
	SimTime() float64
	// MissionElapsed returns mission elapsed time (MET) in seconds.
	MissionElapsed() float64
	// WallTimeNS returns a monotonic timestamp in nanoseconds.
	WallTimeNS() int64
}

// globalTime holds the installed TimeSource. Installing a source is
// expected to happen once at simulation startup; reads are frequent.
var globalTime atomic.Value // TimeSource

// SetTimeSource installs the global time source used by Capture.
// Passing nil resets the global source to a zeroed ManualTimeSource.
func SetTimeSource(ts TimeSource) {
	if ts == nil {
		ts = NewManualTimeSource(0, 0, 0)
	}
	globalTime.Store(&timeSourceBox{ts})
}

// CurrentTimeSource returns the global time source. It never returns
// nil; before any SetTimeSource call it returns the fallback
// ManualTimeSource.
func CurrentTimeSource() TimeSource {
	if box, ok := globalTime.Load().(*timeSourceBox); ok {
		return box.ts
	}
	// First use before installation: publish the fallback so every
	// caller observes the same instance.
	fallbackOnce.Do(func() {
		globalTime.CompareAndSwap(nil, &timeSourceBox{fallback})
	})
	return globalTime.Load().(*timeSourceBox).ts
}

// timeSourceBox keeps atomic.Value happy when callers install values
// of differing concrete TimeSource types.
type timeSourceBox struct {
	ts TimeSource
}

var (
	fallback     = NewManualTimeSource(0, 0, 0)
	fallbackOnce sync.Once
)

// ManualTimeSource is a deterministic TimeSource under explicit
// control of the caller. It exists so tests and pre-init code never
// depend on real clocks.
type ManualTimeSource struct {
	mu     sync.Mutex
	sim    float64
	met    float64
	wallNS int64
}

// NewManualTimeSource returns a ManualTimeSource with explicit initial
// values.
func NewManualTimeSource(sim, met float64, wallNS int64) *ManualTimeSource {
	return &ManualTimeSource{sim: sim, met: met, wallNS: wallNS}
}

// SimTime returns the current simulation time.
func (m *ManualTimeSource) SimTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sim
}

// MissionElapsed returns the current mission elapsed time.
func (m *ManualTimeSource) MissionElapsed() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.met
}

// WallTimeNS returns the current monotonic timestamp.
func (m *ManualTimeSource) WallTimeNS() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wallNS
}

// Advance adds the given deltas to all three time values.
func (m *ManualTimeSource) Advance(simDelta, metDelta float64, wallDeltaNS int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sim += simDelta
	m.met += metDelta
	m.wallNS += wallDeltaNS
}
