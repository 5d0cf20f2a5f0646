// Package formatter renders core.Record values into text lines.
//
// The only built-in implementation is PatternFormatter, which performs
// token substitution over a fixed vocabulary ({level}, {sim}, {met},
// {wall_ns}, {thread}, {file}, {line}, {function}, {logger}, {msg}).
// Unknown tokens are preserved verbatim, braces included, so patterns
// written for a newer vocabulary degrade gracefully.
//
// Formatting is independent of logger routing and of sinks: a Record
// is already fully materialized when it reaches a formatter. Formatters
// use a pooled bytes.Buffer internally and Append-style conversions to
// keep per-record allocations low; buffers above 64 KiB are not
// returned to the pool.
package formatter
