/*
Package scanner implements the single-pass cursor shared by the markup and
the stylesheet parsers.

The cursor never backtracks. Failing expectations are reported as
*diagnostics.ParseError, carrying the byte offset of the failure.
*/
package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/webcore/diagnostics"
)

// Cursor walks over an input string.
type Cursor struct {
	input string
	pos   int
}

// New creates a cursor for input. Leading and trailing white space is
// trimmed from the input.
func New(input string) *Cursor {
	return &Cursor{input: strings.TrimSpace(input)}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// AtEnd is true if the input is exhausted.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.input)
}

// Rest returns the unconsumed input.
func (c *Cursor) Rest() string {
	return c.input[c.pos:]
}

// Peek returns the next rune without consuming it. ok is false at the end
// of the input.
func (c *Cursor) Peek() (r rune, ok bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, _ = utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

// PeekIs is true if the next rune is r.
func (c *Cursor) PeekIs(r rune) bool {
	next, ok := c.Peek()
	return ok && next == r
}

// PeekN returns up to n bytes of lookahead.
func (c *Cursor) PeekN(n int) string {
	end := c.pos + n
	if end > len(c.input) {
		end = len(c.input)
	}
	return c.input[c.pos:end]
}

// StartsWith is true if the unconsumed input starts with s.
func (c *Cursor) StartsWith(s string) bool {
	return strings.HasPrefix(c.input[c.pos:], s)
}

// StartsWithFold is like StartsWith, but ignores ASCII case.
func (c *Cursor) StartsWithFold(s string) bool {
	return strings.EqualFold(c.PeekN(len(s)), s)
}

// Advance skips n bytes. It never moves beyond the end of the input.
func (c *Cursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.input) {
		c.pos = len(c.input)
	}
}

// Next consumes one rune.
func (c *Cursor) Next() (rune, error) {
	if c.AtEnd() {
		return 0, c.Errorf(diagnostics.Bounds, "unexpected end of input")
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r, nil
}

// ConsumeWhile consumes runes as long as test holds and returns them.
func (c *Cursor) ConsumeWhile(test func(rune) bool) string {
	start := c.pos
	for !c.AtEnd() {
		r, size := utf8.DecodeRuneInString(c.input[c.pos:])
		if !test(r) {
			break
		}
		c.pos += size
	}
	return c.input[start:c.pos]
}

// ConsumeUntil consumes everything up to (excluding) the next occurrence of
// stop, or up to the end of input. found reports if stop has been seen.
func (c *Cursor) ConsumeUntil(stop string) (s string, found bool) {
	i := strings.Index(c.input[c.pos:], stop)
	if i < 0 {
		s = c.input[c.pos:]
		c.pos = len(c.input)
		return s, false
	}
	s = c.input[c.pos : c.pos+i]
	c.pos += i
	return s, true
}

// Expect consumes s or fails. If the input ends before s could be matched
// completely, a Bounds error is returned; otherwise a Mismatch error.
func (c *Cursor) Expect(s string) error {
	if c.StartsWith(s) {
		c.pos += len(s)
		return nil
	}
	found := c.PeekN(len(s))
	if len(found) < len(s) && strings.HasPrefix(s, found) {
		return c.Errorf(diagnostics.Bounds, "expected %q, but input ends", s)
	}
	return c.Errorf(diagnostics.Mismatch, "expected %q, found %q", s, found)
}

// SkipWhitespace consumes white space.
func (c *Cursor) SkipWhitespace() {
	c.ConsumeWhile(unicode.IsSpace)
}

// Identifier consumes a (possibly empty) run of identifier characters.
func (c *Cursor) Identifier() string {
	return c.ConsumeWhile(IsTagChar)
}

// Errorf creates a parse error located at the current position.
func (c *Cursor) Errorf(kind diagnostics.Kind, format string, args ...interface{}) *diagnostics.ParseError {
	return diagnostics.Errorf(kind, c.pos, format, args...)
}

// IsTagChar is the character class of tag names, attribute names and CSS
// identifiers: ASCII letters, digits, '-' and '_'.
func IsTagChar(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}

// IsHexDigit is true for 0-9, a-f and A-F.
func IsHexDigit(r rune) bool {
	return '0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F'
}
