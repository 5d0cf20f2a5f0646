package sink

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmmcphai/sim-logger/formatter"
)

func TestFileSinkAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.log")
	s, err := NewFileSink(FileConfig{
		Path:      path,
		Formatter: formatter.NewPatternFormatter("{level} {msg}"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Write(makeRecord("first")); err != nil {
		t.Fatal(err)
	}
	if err := s.Write(makeRecord("second")); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 || lines[0] != "INFO first" || lines[1] != "INFO second" {
		t.Fatalf("file contents %q", string(data))
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestFileSinkCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs", "2026", "sim.log")
	s, err := NewFileSink(FileConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("parent directory missing: %v", err)
	}
}

func TestFileSinkAppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.log")
	fm := formatter.NewPatternFormatter("{msg}")

	s, err := NewFileSink(FileConfig{Path: path, Formatter: fm})
	if err != nil {
		t.Fatal(err)
	}
	s.Write(makeRecord("run1"))
	s.Close()

	s, err = NewFileSink(FileConfig{Path: path, Formatter: fm})
	if err != nil {
		t.Fatal(err)
	}
	s.Write(makeRecord("run2"))
	s.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "run1\nrun2\n"; got != want {
		t.Fatalf("file contents %q, want %q", got, want)
	}
}

func TestFileSinkDurableFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.log")
	s, err := NewFileSink(FileConfig{
		Path:      path,
		Formatter: formatter.NewPatternFormatter("{msg}"),
		Durable:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if !s.Durable() {
		t.Fatal("Durable() = false")
	}
	s.Write(makeRecord("synced"))
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "synced\n" {
		t.Fatalf("file contents %q after durable flush", string(data))
	}
}

func TestFileSinkClosedBehavior(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.log")
	s, err := NewFileSink(FileConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second Close returned %v", err)
	}
	if err := s.Write(makeRecord("late")); err == nil {
		t.Fatal("Write on a closed file sink succeeded")
	}
	if err := s.Flush(); err == nil {
		t.Fatal("Flush on a closed file sink succeeded")
	}
}

func TestFileSinkRequiresPath(t *testing.T) {
	if _, err := NewFileSink(FileConfig{}); err == nil {
		t.Fatal("NewFileSink without a path succeeded")
	}
}
