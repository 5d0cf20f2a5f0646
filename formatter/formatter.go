package formatter

import (
	"bytes"
	"sync"

	"github.com/rmmcphai/sim-logger/core"
)

// Formatter renders a record into a single text line (without a
// trailing newline; sinks are responsible for line termination).
type Formatter interface {
	Format(r core.Record) string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
