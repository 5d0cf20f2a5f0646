package formatter

import (
	"testing"

	"github.com/rmmcphai/sim-logger/core"
)

func sampleRecord() core.Record {
	return core.Record{
		Level:       core.InfoLevel,
		SimTime:     12.5,
		MissionTime: 120.25,
		WallTimeNS:  987654321,
		GoroutineID: 7,
		File:        "guidance.go",
		Line:        42,
		Function:    "guidance.Update",
		LoggerName:  "sim.guidance",
		Message:     "burn complete",
	}
}

func TestPatternTokens(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"{level}", "INFO"},
		{"{sim}", "12.500000"},
		{"{met}", "120.250000"},
		{"{wall_ns}", "987654321"},
		{"{thread}", "7"},
		{"{file}", "guidance.go"},
		{"{line}", "42"},
		{"{function}", "guidance.Update"},
		{"{logger}", "sim.guidance"},
		{"{msg}", "burn complete"},
		{"{met} {level} {logger}: {msg}", "120.250000 INFO sim.guidance: burn complete"},
		{"[{file}:{line}] {msg}", "[guidance.go:42] burn complete"},
		{"no tokens here", "no tokens here"},
	}

	for _, c := range cases {
		got := NewPatternFormatter(c.pattern).Format(sampleRecord())
		if got != c.want {
			t.Errorf("pattern %q: got %q, want %q", c.pattern, got, c.want)
		}
	}
}

func TestPatternUnknownTokensPreserved(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"{nope}", "{nope}"},
		{"{}", "{}"},
		{"{bad-token} {msg}", "{bad-token} burn complete"},
		{"{MSG}", "{MSG}"}, // tokens are case sensitive
	}
	for _, c := range cases {
		got := NewPatternFormatter(c.pattern).Format(sampleRecord())
		if got != c.want {
			t.Errorf("pattern %q: got %q, want %q", c.pattern, got, c.want)
		}
	}
}

func TestPatternUnterminatedBraceIsLiteral(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"{met", "{met"},
		{"tail {", "tail {"},
		{"{msg} trailing {sim", "burn complete trailing {sim"},
	}
	for _, c := range cases {
		got := NewPatternFormatter(c.pattern).Format(sampleRecord())
		if got != c.want {
			t.Errorf("pattern %q: got %q, want %q", c.pattern, got, c.want)
		}
	}
}

func TestPatternEmptyUsesDefault(t *testing.T) {
	f := NewPatternFormatter("")
	if f.Pattern() != DefaultPattern {
		t.Fatalf("empty pattern resolved to %q, want %q", f.Pattern(), DefaultPattern)
	}
	got := f.Format(sampleRecord())
	if want := "120.250000 INFO sim.guidance: burn complete"; got != want {
		t.Fatalf("default pattern output %q, want %q", got, want)
	}
}

func TestPatternNegativeTimesFormat(t *testing.T) {
	r := sampleRecord()
	r.MissionTime = -5.0 // pre-launch countdown
	got := NewPatternFormatter("{met}").Format(r)
	if want := "-5.000000"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPatternTokensSet(t *testing.T) {
	f := NewPatternFormatter("{met} {msg} {nope} {bad-token} {met")
	tokens := f.Tokens()
	for _, want := range []string{"met", "msg", "nope"} {
		if _, ok := tokens[want]; !ok {
			t.Errorf("token %q missing from set %v", want, tokens)
		}
	}
	if _, ok := tokens["bad-token"]; ok {
		t.Error("invalid token made it into the token set")
	}
	if len(tokens) != 3 {
		t.Errorf("token set %v, want exactly met/msg/nope", tokens)
	}
}

func TestRequireMET(t *testing.T) {
	if _, err := NewPatternFormatterRequireMET("{met} {msg}"); err != nil {
		t.Fatalf("pattern with {met} rejected: %v", err)
	}
	if _, err := NewPatternFormatterRequireMET("{sim} {msg}"); err == nil {
		t.Fatal("pattern without {met} accepted")
	}
	// Empty pattern falls back to DefaultPattern, which carries {met}.
	if _, err := NewPatternFormatterRequireMET(""); err != nil {
		t.Fatalf("default pattern rejected: %v", err)
	}
}

func TestPatternConcurrentFormat(t *testing.T) {
	f := NewPatternFormatter(DefaultPattern)
	r := sampleRecord()
	want := f.Format(r)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 200; j++ {
				if got := f.Format(r); got != want {
					t.Errorf("concurrent Format got %q, want %q", got, want)
					return
				}
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
