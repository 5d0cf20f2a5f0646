// Package sink provides destinations for log records and the
// asynchronous delivery pipeline that decorates them.
//
// A Sink consumes fully materialized core.Record values. Built-in
// sinks:
//
//   - ConsoleSink writes pattern-formatted lines to any io.Writer with
//     optional ANSI severity coloring.
//   - FileSink appends to a single file through a buffered writer,
//     with an optional durable (fsync) flush mode.
//   - RotatingFileSink appends with size-based rotation and backup
//     retention.
//   - RecordingSink captures records in memory for tests and
//     harnesses.
//   - AsyncSink wraps any other sink behind a bounded queue drained by
//     one dedicated goroutine, so producers on simulation hot paths
//     never pay the wrapped sink's I/O cost.
//
// AsyncSink itself satisfies Sink, so asynchrony is a transparent
// decoration: it can be installed anywhere a sink is expected.
//
// When its queue is full, AsyncSink applies the configured
// OverflowPolicy: Block suspends the producer until the consumer frees
// a slot, DropNewest discards the incoming record, and DropOldest
// evicts the oldest queued record to admit the new one. Drops and
// wrapped-sink failures are never surfaced to producers; they are
// observable only through the pipeline's atomic counters.
package sink
