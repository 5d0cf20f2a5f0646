// Package core defines the data model shared by the whole logging
// pipeline: severity levels, the immutable Record value describing one
// log event, and the TimeSource abstraction that supplies simulation
// time, mission elapsed time, and a monotonic wall timestamp.
//
// Records are fully materialized at the call site via Capture and never
// mutate afterwards, so they can be copied into queues and handed to
// sinks from another goroutine without synchronization.
//
// The process-global time source (SetTimeSource / CurrentTimeSource)
// is the single authority for record timestamps. When no source has
// been installed, a zeroed ManualTimeSource is used, which keeps
// behavior deterministic before simulation startup and in tests.
package core
