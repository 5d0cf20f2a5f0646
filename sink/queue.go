package sink

import (
	"sync"

	"github.com/rmmcphai/sim-logger/core"
)

// recordQueue is the bounded ring buffer owned by one AsyncSink. A
// single mutex protects the buffer, cursors, and flags; two condition
// variables carry the producer/consumer handshakes.
//
// Invariants: 0 <= count <= capacity at every observable point, and
// the count records are contiguous starting at head modulo capacity.
// Records leave in strict enqueue order except for the single eviction
// a DropOldest overflow performs.
type recordQueue struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	capacity int
	policy   OverflowPolicy

	buf   []core.Record
	head  int
	tail  int
	count int

	stopped bool
	kicked  bool
}

func newRecordQueue(capacity int, policy OverflowPolicy) *recordQueue {
	if capacity < 1 {
		capacity = 1
	}
	q := &recordQueue{
		capacity: capacity,
		policy:   policy,
		buf:      make([]core.Record, capacity),
	}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// enqueue admits r according to the overflow policy. A queue that has
// been told to stop rejects immediately, before any space or policy
// check. dropped reports how many records were discarded to satisfy
// this call: 1 for a DropNewest rejection or a DropOldest eviction,
// 0 otherwise. Stop-time rejections report accepted=false, dropped=0.
func (q *recordQueue) enqueue(r core.Record) (accepted bool, dropped int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.stopped {
		return false, 0
	}

	if q.policy == Block {
		for !q.stopped && q.count == q.capacity {
			q.notFull.Wait()
		}
		if q.stopped {
			return false, 0
		}
	} else if q.count == q.capacity {
		if q.policy == DropNewest {
			return false, 1
		}
		// DropOldest: evict one, then admit.
		q.popOldestLocked()
		dropped = 1
	}

	q.buf[q.tail] = r
	q.tail = (q.tail + 1) % q.capacity
	q.count++
	q.notEmpty.Signal()
	return true, dropped
}

// dequeueBatch appends up to max oldest-first records to dst and
// returns the extended slice. It never blocks; it may append fewer
// than max records, including zero.
func (q *recordQueue) dequeueBatch(dst []core.Record, max int) []core.Record {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.count
	if n > max {
		n = max
	}
	for i := 0; i < n; i++ {
		dst = append(dst, q.buf[q.head])
		q.buf[q.head] = core.Record{}
		q.head = (q.head + 1) % q.capacity
		q.count--
	}
	if n > 0 {
		q.notFull.Broadcast()
	}
	return dst
}

func (q *recordQueue) empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count == 0
}

func (q *recordQueue) length() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// requestStop flips the stop flag and wakes every goroutine blocked on
// enqueue or waiting for work. Idempotent.
func (q *recordQueue) requestStop() {
	q.mu.Lock()
	q.stopped = true
	q.mu.Unlock()
	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

// kick wakes the consumer even when no data is present, so a flush
// request on an empty queue is observed promptly.
func (q *recordQueue) kick() {
	q.mu.Lock()
	q.kicked = true
	q.mu.Unlock()
	q.notEmpty.Broadcast()
}

// waitForWork suspends the consumer until stop is requested, at least
// one record is present, or a kick occurred. The kick flag is cleared
// before returning.
func (q *recordQueue) waitForWork() (stopped, empty bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for !q.stopped && q.count == 0 && !q.kicked {
		q.notEmpty.Wait()
	}
	q.kicked = false
	return q.stopped, q.count == 0
}

func (q *recordQueue) popOldestLocked() {
	q.buf[q.head] = core.Record{}
	q.head = (q.head + 1) % q.capacity
	q.count--
}
