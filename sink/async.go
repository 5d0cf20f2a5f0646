package sink

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/rmmcphai/sim-logger/core"
)

// AsyncOptions configures an AsyncSink. All fields are fixed at
// construction.
type AsyncOptions struct {
	// Capacity is the maximum number of queued records. Values below 1
	// are clamped to 1.
	Capacity int
	// Policy selects the overflow behavior when the queue is full.
	Policy OverflowPolicy
	// MaxBatch limits how many records the consumer drains per
	// iteration. Values below 1 are clamped to 1.
	MaxBatch int
}

// DefaultAsyncOptions returns the standard configuration: a queue of
// 1024 records, Block on overflow, batches of up to 256.
func DefaultAsyncOptions() AsyncOptions {
	return AsyncOptions{Capacity: 1024, Policy: Block, MaxBatch: 256}
}

// AsyncSink decorates a wrapped sink with a bounded queue drained by
// one dedicated consumer goroutine. Producers pay only the enqueue
// cost; all wrapped-sink I/O happens on the consumer.
//
// Because exactly one goroutine performs that I/O, the wrapped sink
// never sees concurrent invocation from this pipeline (it must still
// be safe for concurrent use if shared directly with other callers).
//
// Write never returns a failure to the producer and Flush blocks until
// everything written before it has reached the wrapped sink. Wrapped
// sink failures are contained and counted; they are observable only
// through SinkFailures.
type AsyncSink struct {
	wrapped Sink
	opts    AsyncOptions
	queue   *recordQueue

	stopRequested atomic.Bool

	// Flush handshake: Flush advances flushRequested and waits for the
	// consumer to publish that generation as completed. flushCompleted
	// only advances on the consumer goroutine.
	flushRequested atomic.Uint64
	flushCompleted atomic.Uint64
	flushMu        sync.Mutex
	flushCond      *sync.Cond
	drained        bool // set under flushMu when the consumer exits

	dropped  atomic.Uint64
	failures atomic.Uint64

	wg sync.WaitGroup
}

// NewAsyncSink starts the pipeline around wrapped. It fails when
// wrapped is nil; non-positive Capacity and MaxBatch are clamped to 1.
// The consumer goroutine runs until Close.
func NewAsyncSink(wrapped Sink, opts AsyncOptions) (*AsyncSink, error) {
	if wrapped == nil {
		return nil, errors.New("async sink requires a wrapped sink")
	}
	if opts.Capacity < 1 {
		opts.Capacity = 1
	}
	if opts.MaxBatch < 1 {
		opts.MaxBatch = 1
	}

	s := &AsyncSink{
		wrapped: wrapped,
		opts:    opts,
		queue:   newRecordQueue(opts.Capacity, opts.Policy),
	}
	s.flushCond = sync.NewCond(&s.flushMu)

	s.wg.Add(1)
	go s.consume()
	return s, nil
}

// Write enqueues a copy of r. It never reports an error: overflow
// drops and stop-time rejections are counted in DroppedRecords. Under
// the Block policy the caller suspends until a slot frees or the
// pipeline stops.
func (s *AsyncSink) Write(r core.Record) error {
	accepted, dropped := s.queue.enqueue(r)
	if dropped > 0 {
		s.dropped.Add(uint64(dropped))
	}
	if !accepted && dropped == 0 {
		// Stop-time rejection: the record never reaches the wrapped
		// sink, so it counts as exactly one drop.
		s.dropped.Add(1)
	}
	return nil
}

// Flush blocks until every record whose Write returned before this
// call has been handed to the wrapped sink and the wrapped sink's own
// Flush has subsequently run at least once. Concurrent callers may
// share one consumer-side completion pass. Flush after Close returns
// immediately.
func (s *AsyncSink) Flush() error {
	gen := s.flushRequested.Add(1)

	// Kick even when the queue is empty so the consumer observes the
	// request promptly.
	s.queue.kick()

	s.flushMu.Lock()
	for s.flushCompleted.Load() < gen && !s.drained {
		s.flushCond.Wait()
	}
	s.flushMu.Unlock()
	return nil
}

// Close requests stop, wakes the consumer, and waits for it to finish
// a final best-effort drain: all remaining queued records are
// delivered, then the wrapped sink is flushed once more. Close never
// blocks indefinitely because no Write can be admitted once stop is
// requested. Idempotent.
func (s *AsyncSink) Close() error {
	if !s.stopRequested.Swap(true) {
		s.queue.requestStop()
		s.queue.kick()
	}
	s.wg.Wait()
	return nil
}

// DroppedRecords returns the total number of writes that never reached
// the wrapped sink: overflow drops, DropOldest evictions, and
// stop-time rejections. Monotonic; safe to read concurrently.
func (s *AsyncSink) DroppedRecords() uint64 {
	return s.dropped.Load()
}

// SinkFailures returns how many wrapped-sink Write or Flush calls
// failed (error or panic). Monotonic; safe to read concurrently.
func (s *AsyncSink) SinkFailures() uint64 {
	return s.failures.Load()
}

// consume is the pipeline's single consumer loop. It multiplexes three
// concerns: draining records to the wrapped sink, answering flush
// requests, and final drainage on shutdown.
func (s *AsyncSink) consume() {
	defer s.wg.Done()

	batch := make([]core.Record, 0, s.opts.MaxBatch)
	var lastFlushGen uint64

	for {
		stopped, empty := s.queue.waitForWork()
		if stopped && empty {
			break
		}

		batch = s.drain(batch)

		if want := s.flushRequested.Load(); want != lastFlushGen {
			// Records written before a flush request were enqueued
			// before the generation counter advanced, so draining
			// again after loading it guarantees they reach the
			// wrapped sink before its flush.
			batch = s.drain(batch)
			s.flushWrapped()
			lastFlushGen = want
			s.flushMu.Lock()
			s.flushCompleted.Store(want)
			s.flushMu.Unlock()
			s.flushCond.Broadcast()
		}
	}

	// Final drain: deliver whatever is left, flush once more, and
	// release every flush waiter so none can outlive the pipeline.
	s.drain(batch)
	s.flushWrapped()

	s.flushMu.Lock()
	s.flushCompleted.Store(s.flushRequested.Load())
	s.drained = true
	s.flushMu.Unlock()
	s.flushCond.Broadcast()
}

// drain empties the queue in batches of at most MaxBatch, delivering
// each record with individual failure containment.
func (s *AsyncSink) drain(batch []core.Record) []core.Record {
	for {
		batch = s.queue.dequeueBatch(batch[:0], s.opts.MaxBatch)
		if len(batch) == 0 {
			return batch
		}
		for i := range batch {
			s.deliver(batch[i])
		}
	}
}

func (s *AsyncSink) deliver(r core.Record) {
	defer func() {
		if recover() != nil {
			s.failures.Add(1)
		}
	}()
	if err := s.wrapped.Write(r); err != nil {
		s.failures.Add(1)
	}
}

func (s *AsyncSink) flushWrapped() {
	defer func() {
		if recover() != nil {
			s.failures.Add(1)
		}
	}()
	if err := s.wrapped.Flush(); err != nil {
		s.failures.Add(1)
	}
}
