package formatter

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"

	"github.com/rmmcphai/sim-logger/core"
)

// DefaultPattern is the pattern used when callers do not supply one.
const DefaultPattern = "{met} {level} {logger}: {msg}"

// PatternFormatter substitutes {token} placeholders with record
// fields.
//
// Supported tokens:
//
//   - {level}    canonical uppercase level name
//   - {sim}      simulation time, seconds, fixed 6 fractional digits
//   - {met}      mission elapsed time, same formatting as {sim}
//   - {wall_ns}  monotonic wall timestamp in nanoseconds
//   - {thread}   originating goroutine ID
//   - {file}     source file base name
//   - {line}     source line
//   - {function} function name
//   - {logger}   owning logger name
//   - {msg}      message text
//
// Token characters are [A-Za-z0-9_]. Unknown tokens are copied through
// verbatim with their braces; an unterminated '{' is copied through as
// literal text.
type PatternFormatter struct {
	pattern string
	tokens  map[string]struct{}
}

// NewPatternFormatter creates a formatter for the given pattern. An
// empty pattern uses DefaultPattern.
func NewPatternFormatter(pattern string) *PatternFormatter {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &PatternFormatter{
		pattern: pattern,
		tokens:  extractTokens(pattern),
	}
}

// NewPatternFormatterRequireMET is like NewPatternFormatter but fails
// when the pattern does not contain the {met} token. Mission elapsed
// time is mandatory in flight-style log output, and this makes a
// misconfigured pattern explicit at construction time.
func NewPatternFormatterRequireMET(pattern string) (*PatternFormatter, error) {
	f := NewPatternFormatter(pattern)
	if _, ok := f.tokens["met"]; !ok {
		return nil, errors.Errorf("pattern %q is missing the required {met} token", f.pattern)
	}
	return f, nil
}

// Pattern returns the raw pattern string.
func (f *PatternFormatter) Pattern() string { return f.pattern }

// Tokens returns the set of tokens detected in the pattern, without
// braces. The returned map must not be modified.
func (f *PatternFormatter) Tokens() map[string]struct{} { return f.tokens }

// Format renders the record according to the pattern.
func (f *PatternFormatter) Format(r core.Record) string {
	buf := getBuffer()
	defer putBuffer(buf)

	pat := f.pattern
	i := 0
	for i < len(pat) {
		c := pat[i]
		if c != '{' {
			buf.WriteByte(c)
			i++
			continue
		}

		end := tokenEnd(pat, i+1)
		if end < 0 {
			// Unterminated '{': copy the rest verbatim.
			buf.WriteString(pat[i:])
			break
		}

		token := pat[i+1 : end]
		if !appendToken(buf, token, r) {
			buf.WriteByte('{')
			buf.WriteString(token)
			buf.WriteByte('}')
		}
		i = end + 1
	}

	return buf.String()
}

// appendToken writes the value of a known token and reports whether
// the token was recognized.
func appendToken(buf *bytes.Buffer, token string, r core.Record) bool {
	switch token {
	case "level":
		buf.WriteString(r.Level.String())
	case "sim":
		appendSeconds(buf, r.SimTime)
	case "met":
		appendSeconds(buf, r.MissionTime)
	case "wall_ns":
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), r.WallTimeNS, 10))
	case "thread":
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), r.GoroutineID, 10))
	case "file":
		buf.WriteString(r.File)
	case "line":
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(r.Line), 10))
	case "function":
		buf.WriteString(r.Function)
	case "logger":
		buf.WriteString(r.LoggerName)
	case "msg":
		buf.WriteString(r.Message)
	default:
		return false
	}
	return true
}

// appendSeconds renders a seconds value with fixed 6 fractional
// digits, the canonical formatting for sim time and MET.
func appendSeconds(buf *bytes.Buffer, v float64) {
	buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), v, 'f', 6, 64))
}

// tokenEnd returns the index of the closing '}' for a token starting
// at start, or -1 when the token is unterminated. Content validity is
// not checked here; an invalid token is simply never recognized.
func tokenEnd(pat string, start int) int {
	j := start
	for j < len(pat) && pat[j] != '}' {
		j++
	}
	if j >= len(pat) {
		return -1
	}
	return j
}

func isTokenChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func validToken(token string) bool {
	if token == "" {
		return false
	}
	for i := 0; i < len(token); i++ {
		if !isTokenChar(token[i]) {
			return false
		}
	}
	return true
}

func extractTokens(pattern string) map[string]struct{} {
	out := make(map[string]struct{})
	i := 0
	for i < len(pattern) {
		if pattern[i] != '{' {
			i++
			continue
		}
		end := tokenEnd(pattern, i+1)
		if end < 0 {
			break
		}
		if token := pattern[i+1 : end]; validToken(token) {
			out[token] = struct{}{}
		}
		i = end + 1
	}
	return out
}
