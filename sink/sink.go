package sink

import (
	"github.com/rmmcphai/sim-logger/core"
)

// Sink is a destination for fully materialized log records.
//
// Implementations must be safe for concurrent use: multiple goroutines
// may write to the same sink. Write and Flush report failures through
// their error return; implementations must not panic outward. Callers
// in this module additionally contain both errors and panics, so a
// faulty sink degrades to counted failures rather than taking down the
// simulation.
type Sink interface {
	// Write consumes one record.
	Write(r core.Record) error

	// Flush forces any buffered output to its destination.
	Flush() error
}
