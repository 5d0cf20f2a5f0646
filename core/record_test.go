package core

import (
	"strings"
	"sync"
	"testing"
)

func TestCaptureSnapshotsTimeSource(t *testing.T) {
	ts := NewManualTimeSource(10.5, 100.25, 42)
	SetTimeSource(ts)
	defer SetTimeSource(nil)

	r := Capture(InfoLevel, "sim.nav", nil, "aligned", 1)
	if r.SimTime != 10.5 || r.MissionTime != 100.25 || r.WallTimeNS != 42 {
		t.Fatalf("timestamps %v/%v/%v, want 10.5/100.25/42", r.SimTime, r.MissionTime, r.WallTimeNS)
	}

	// Later clock movement must not affect the captured record.
	ts.Advance(1, 1, 1)
	if r.SimTime != 10.5 {
		t.Fatal("record aliases the time source")
	}
}

func TestCaptureCallSite(t *testing.T) {
	r := Capture(WarnLevel, "root", nil, "here", 1)
	if r.File != "record_test.go" {
		t.Fatalf("File = %q, want record_test.go", r.File)
	}
	if r.Line == 0 {
		t.Fatal("Line = 0")
	}
	if !strings.Contains(r.Function, "TestCaptureCallSite") {
		t.Fatalf("Function = %q, want the test function", r.Function)
	}
	if r.GoroutineID == 0 {
		t.Fatal("GoroutineID = 0")
	}
}

func TestCaptureCopiesTags(t *testing.T) {
	tags := []Tag{{Key: "phase", Value: "ascent"}, {Key: "vehicle", Value: "x1"}}
	r := Capture(InfoLevel, "root", tags, "staged", 1)

	tags[0].Value = "mutated"
	if r.Tags[0].Value != "ascent" {
		t.Fatal("record tags alias the caller's slice")
	}
	if len(r.Tags) != 2 || r.Tags[1].Key != "vehicle" {
		t.Fatalf("tags %v, want the two originals in order", r.Tags)
	}

	empty := Capture(InfoLevel, "root", nil, "bare", 1)
	if empty.Tags != nil {
		t.Fatalf("nil input tags produced %v", empty.Tags)
	}
}

func TestGoroutineIDDistinct(t *testing.T) {
	main := goroutineID()

	var wg sync.WaitGroup
	ids := make(chan uint64, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- goroutineID()
		}()
	}
	wg.Wait()
	close(ids)

	for id := range ids {
		if id == 0 {
			t.Fatal("goroutineID returned 0 on a spawned goroutine")
		}
		if id == main {
			t.Fatal("spawned goroutine reported the main goroutine's ID")
		}
	}
}
