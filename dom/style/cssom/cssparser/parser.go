package cssparser

import (
	"strconv"
	"unicode"

	"github.com/npillmayer/webcore/diagnostics"
	"github.com/npillmayer/webcore/dom/style"
	"github.com/npillmayer/webcore/dom/style/cssom"
	"github.com/npillmayer/webcore/internal/scanner"
	"github.com/npillmayer/webcore/maybe"
	"github.com/pkg/errors"
)

// Parser parses a single stylesheet text. A parser must not be re-used.
type Parser struct {
	cursor *scanner.Cursor
	sink   *diagnostics.Sink
}

// NewParser creates a parser for input. Non-fatal findings and the fatal
// failure, if any, are reported to sink, which may be nil.
func NewParser(input string, sink *diagnostics.Sink) *Parser {
	return &Parser{
		cursor: scanner.New(input),
		sink:   sink,
	}
}

// Parse parses a stylesheet.
func Parse(input string) (*cssom.StyleSheet, error) {
	return NewParser(input, nil).Parse()
}

// ParseSelectors parses a comma separated list of selectors, e.g. the
// prelude of a rule. The selectors are returned in source order.
func ParseSelectors(input string, sink *diagnostics.Sink) ([]cssom.Selector, error) {
	p := NewParser(input, sink)
	selectors, err := p.selectors(true)
	if err != nil {
		return nil, p.fail(err)
	}
	return selectors, nil
}

// ParseValue parses a single property value, e.g. "12px".
func ParseValue(input string, sink *diagnostics.Sink) (style.Value, error) {
	p := NewParser(input, sink)
	v, err := p.value()
	if err == nil {
		if err = p.skipTrivia(); err == nil && !p.cursor.AtEnd() {
			err = p.cursor.Errorf(diagnostics.Mismatch, "unexpected %q after value", p.cursor.PeekN(8))
		}
	}
	if err != nil {
		return nil, p.fail(err)
	}
	return v, nil
}

// Parse parses a stylesheet. The whole input has to be consumed.
func (p *Parser) Parse() (*cssom.StyleSheet, error) {
	var rules []*cssom.Rule
	if err := p.skipTrivia(); err != nil {
		return nil, p.fail(err)
	}
	for !p.cursor.AtEnd() {
		r, err := p.rule()
		if err != nil {
			return nil, p.fail(err)
		}
		rules = append(rules, r)
		if err := p.skipTrivia(); err != nil {
			return nil, p.fail(err)
		}
	}
	tracer().Debugf("parsed %d rules", len(rules))
	return cssom.NewStyleSheet(rules...), nil
}

func (p *Parser) fail(err error) error {
	p.sink.AddError(err.Error())
	return errors.Wrap(err, "css")
}

// skipTrivia skips white space and comments.
func (p *Parser) skipTrivia() error {
	c := p.cursor
	for {
		c.SkipWhitespace()
		if !c.StartsWith("/*") {
			return nil
		}
		start := c.Pos()
		c.Advance(2)
		if _, found := c.ConsumeUntil("*/"); !found {
			return diagnostics.Errorf(diagnostics.Bounds, start, "unterminated comment")
		}
		c.Advance(2)
	}
}

// --- Rules -----------------------------------------------------------------

func (p *Parser) rule() (*cssom.Rule, error) {
	selectors, err := p.selectors(false)
	if err != nil {
		return nil, err
	}
	declarations, err := p.declarations()
	if err != nil {
		return nil, err
	}
	return cssom.NewRule(selectors, declarations), nil
}

// selectors parses a selector list. The list is terminated by '{', which is
// not consumed, or by the end of input, if standalone is set.
func (p *Parser) selectors(standalone bool) ([]cssom.Selector, error) {
	c := p.cursor
	var selectors []cssom.Selector
	for {
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		sel, err := p.selector()
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		r, ok := c.Peek()
		switch {
		case !ok && standalone:
			return selectors, nil
		case !ok:
			return nil, c.Errorf(diagnostics.Bounds, "unexpected end of input in selector list")
		case r == ',':
			c.Advance(1)
		case r == '{' && !standalone:
			return selectors, nil
		default:
			return nil, c.Errorf(diagnostics.Mismatch, "unexpected character %q in selector list", r)
		}
	}
}

func (p *Parser) selector() (cssom.Selector, error) {
	c := p.cursor
	sel := &cssom.Simple{
		TagName: maybe.Nothing[string](),
		ID:      maybe.Nothing[string](),
	}
	start := c.Pos()
	for {
		r, ok := c.Peek()
		if !ok {
			break
		}
		if r == '.' || r == '#' {
			c.Advance(1)
			name := c.Identifier()
			if name == "" {
				return nil, p.unexpected("name after '" + string(r) + "'")
			}
			if r == '.' {
				sel.Classes = append(sel.Classes, name)
			} else if _, dup := maybe.Unpack(sel.ID); dup {
				return nil, c.Errorf(diagnostics.Mismatch, "second id #%s in selector", name)
			} else {
				sel.ID = maybe.Just(name)
			}
		} else if r == '*' {
			c.Advance(1)
		} else if scanner.IsTagChar(r) {
			if _, dup := maybe.Unpack(sel.TagName); dup {
				return nil, c.Errorf(diagnostics.Mismatch, "second tag name in selector")
			}
			sel.TagName = maybe.Just(c.Identifier())
		} else {
			break
		}
	}
	if c.Pos() == start {
		return nil, p.unexpected("selector")
	}
	return sel, nil
}

func (p *Parser) declarations() ([]cssom.Declaration, error) {
	c := p.cursor
	if err := c.Expect("{"); err != nil {
		return nil, err
	}
	var declarations []cssom.Declaration
	for {
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
		if c.AtEnd() || c.PeekIs('}') {
			break
		}
		d, err := p.declaration()
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, d)
	}
	if err := c.Expect("}"); err != nil {
		return nil, err
	}
	return declarations, nil
}

func (p *Parser) declaration() (cssom.Declaration, error) {
	c := p.cursor
	d := cssom.Declaration{Name: c.Identifier()}
	if d.Name == "" {
		return d, p.unexpected("property name")
	}
	if err := p.skipTrivia(); err != nil {
		return d, err
	}
	if err := c.Expect(":"); err != nil {
		return d, err
	}
	if err := p.skipTrivia(); err != nil {
		return d, err
	}
	v, err := p.value()
	if err != nil {
		return d, err
	}
	d.Value = v
	if err := p.skipTrivia(); err != nil {
		return d, err
	}
	if err := c.Expect(";"); err != nil {
		return d, err
	}
	return d, nil
}

// unexpected creates an error for a missing syntactic element.
func (p *Parser) unexpected(what string) error {
	c := p.cursor
	if c.AtEnd() {
		return c.Errorf(diagnostics.Bounds, "expected %s, but input ends", what)
	}
	return c.Errorf(diagnostics.Mismatch, "expected %s, found %q", what, c.PeekN(8))
}

// --- Values ----------------------------------------------------------------

var colorFunctions = []string{"rgb(", "rgba(", "hsl(", "hsla("}

func (p *Parser) value() (style.Value, error) {
	c := p.cursor
	if c.PeekIs('#') {
		return p.hexColor()
	}
	for _, f := range colorFunctions {
		if c.StartsWithFold(f) {
			return nil, c.Errorf(diagnostics.UnknownToken, "unsupported color function %q", f)
		}
	}
	if p.startsNumber() {
		return p.length()
	}
	keyword := c.Identifier()
	if keyword == "" {
		return nil, p.unexpected("value")
	}
	return style.Keyword(keyword), nil
}

func (p *Parser) startsNumber() bool {
	s := p.cursor.PeekN(2)
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
		return s != "" && (isDigit(rune(s[0])) || s[0] == '.')
	}
	return isDigit(rune(s[0])) || s[0] == '.'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// length parses a number with an optional unit. A number without unit is
// kept as a keyword.
func (p *Parser) length() (style.Value, error) {
	c := p.cursor
	start := c.Pos()
	literal := ""
	if c.PeekIs('-') {
		c.Advance(1)
		literal = "-"
	}
	literal += c.ConsumeWhile(func(r rune) bool { return isDigit(r) || r == '.' })
	amount, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return nil, diagnostics.Errorf(diagnostics.Mismatch, start, "malformed number %q", literal)
	}
	if c.PeekIs('%') {
		c.Advance(1)
		return style.Length{Amount: amount, Unit: style.Percent}, nil
	}
	unitPos := c.Pos()
	u := c.ConsumeWhile(unicode.IsLetter)
	if u == "" {
		p.sink.Add(diagnostics.Info, "offset %d: number %s without unit", start, literal)
		return style.Keyword(literal), nil
	}
	unit, ok := style.UnitFromString(u)
	if !ok {
		return nil, diagnostics.Errorf(diagnostics.UnknownToken, unitPos, "unknown unit %q", u)
	}
	return style.Length{Amount: amount, Unit: unit}, nil
}

// hexColor parses #rrggbb or #rrggbbaa.
func (p *Parser) hexColor() (style.Value, error) {
	c := p.cursor
	if err := c.Expect("#"); err != nil {
		return nil, err
	}
	var rgba [4]uint8
	for i := 0; i < 3; i++ {
		b, err := p.hexPair()
		if err != nil {
			return nil, err
		}
		rgba[i] = b
	}
	rgba[3] = 0xff
	if s := c.PeekN(2); len(s) == 2 && scanner.IsHexDigit(rune(s[0])) && scanner.IsHexDigit(rune(s[1])) {
		rgba[3], _ = p.hexPair()
	}
	return style.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}

func (p *Parser) hexPair() (uint8, error) {
	c := p.cursor
	s := c.PeekN(2)
	if len(s) < 2 {
		return 0, c.Errorf(diagnostics.Bounds, "incomplete hex color")
	}
	for _, r := range s {
		if !scanner.IsHexDigit(r) {
			return 0, c.Errorf(diagnostics.Mismatch, "expected hex digits, found %q", s)
		}
	}
	b, _ := strconv.ParseUint(s, 16, 8)
	c.Advance(2)
	return uint8(b), nil
}
