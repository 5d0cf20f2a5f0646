package core

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Tag is a key/value pair attached to a record. Tags keep their
// insertion order, unlike a map.
type Tag struct {
	Key   string
	Value string
}

// Record is a fully materialized log event. All fields are populated
// at construction and must be treated as read-only afterwards; a
// Record is a plain value, so assigning it produces an independent
// copy that can cross goroutine boundaries freely.
type Record struct {
	Level       Level
	SimTime     float64
	MissionTime float64
	WallTimeNS  int64
	GoroutineID uint64
	File        string
	Line        uint32
	Function    string
	LoggerName  string
	Tags        []Tag
	Message     string
}

// Capture builds a Record at the call site: it snapshots the global
// time source, records the calling goroutine's identity, and resolves
// the source location callerSkip frames above Capture itself.
//
// The tags slice is copied so the record does not alias caller memory.
func Capture(level Level, loggerName string, tags []Tag, msg string, callerSkip int) Record {
	ts := CurrentTimeSource()

	var ownTags []Tag
	if len(tags) > 0 {
		ownTags = make([]Tag, len(tags))
		copy(ownTags, tags)
	}

	r := Record{
		Level:       level,
		SimTime:     ts.SimTime(),
		MissionTime: ts.MissionElapsed(),
		WallTimeNS:  ts.WallTimeNS(),
		GoroutineID: goroutineID(),
		LoggerName:  loggerName,
		Tags:        ownTags,
		Message:     msg,
	}

	pc, file, line, ok := runtime.Caller(callerSkip)
	if !ok {
		return r
	}
	r.File = filepath.Base(file)
	r.Line = uint32(line)
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		if i := strings.LastIndex(name, "/"); i >= 0 {
			name = name[i+1:]
		}
		r.Function = name
	}
	return r
}
