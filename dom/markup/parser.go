package markup

import (
	"strings"
	"unicode"

	"github.com/npillmayer/webcore/diagnostics"
	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/internal/scanner"
	"github.com/npillmayer/webcore/maybe"
	"github.com/pkg/errors"
)

// Parser parses a single input text. A parser must not be re-used.
type Parser struct {
	cursor *scanner.Cursor
	sink   *diagnostics.Sink
}

// NewParser creates a parser for input. Leading and trailing white space of
// input is ignored. Non-fatal findings and the fatal failure, if any, are
// reported to sink, which may be nil.
func NewParser(input string, sink *diagnostics.Sink) *Parser {
	return &Parser{
		cursor: scanner.New(input),
		sink:   sink,
	}
}

// Parse parses a complete document, including an optional doctype.
func Parse(input string) (*dom.Document, error) {
	return NewParser(input, nil).Parse()
}

// ParseChildren parses a sequence of nodes, without a doctype.
func ParseChildren(input string) ([]*dom.Node, error) {
	return NewParser(input, nil).ParseChildren()
}

// Parse parses a complete document, including an optional doctype.
func (p *Parser) Parse() (*dom.Document, error) {
	doctype, err := p.doctype()
	if err != nil {
		return nil, p.fail(err)
	}
	children, err := p.ParseChildren()
	if err != nil {
		return nil, err
	}
	return &dom.Document{Doctype: doctype, Children: children}, nil
}

// ParseChildren parses a sequence of nodes. The whole input has to be
// consumed; a dangling closing tag is an error.
func (p *Parser) ParseChildren() ([]*dom.Node, error) {
	nodes, err := p.nodes()
	if err == nil && !p.cursor.AtEnd() {
		err = p.cursor.Errorf(diagnostics.Mismatch, "unexpected closing tag %q",
			p.cursor.PeekN(16))
	}
	if err != nil {
		return nil, p.fail(err)
	}
	tracer().Debugf("parsed %d top-level nodes", len(nodes))
	return nodes, nil
}

func (p *Parser) fail(err error) error {
	p.sink.AddError(err.Error())
	return errors.Wrap(err, "markup")
}

// --- Doctype ---------------------------------------------------------------

func (p *Parser) doctype() (*dom.Doctype, error) {
	c := p.cursor
	if !c.StartsWith("<!") || c.StartsWith("<!--") {
		return nil, nil
	}
	c.Advance(2)
	c.SkipWhitespace()
	if keyword := c.Identifier(); !strings.EqualFold(keyword, "DOCTYPE") {
		p.sink.Add(diagnostics.Warning, "offset %d: unusual doctype keyword %q", c.Pos(), keyword)
	}
	c.SkipWhitespace()
	doctype := dom.NewDoctype(c.Identifier())
	c.SkipWhitespace()
	id, err := p.externalID("PUBLIC")
	if err != nil {
		return nil, err
	}
	doctype.PublicID = id
	c.SkipWhitespace()
	if id, err = p.externalID("SYSTEM"); err != nil {
		return nil, err
	}
	doctype.SystemID = id
	c.SkipWhitespace()
	if err := c.Expect(">"); err != nil {
		return nil, err
	}
	tracer().Debugf("doctype %q", doctype.Name)
	return doctype, nil
}

func (p *Parser) externalID(keyword string) (maybe.Maybe[string], error) {
	c := p.cursor
	if !c.StartsWith(keyword) {
		return maybe.Nothing[string](), nil
	}
	c.Advance(len(keyword))
	c.SkipWhitespace()
	if err := c.Expect(`"`); err != nil {
		return nil, err
	}
	id := c.ConsumeWhile(func(r rune) bool { return r != '"' })
	if err := c.Expect(`"`); err != nil {
		return nil, err
	}
	return maybe.Just(id), nil
}

// --- Nodes -----------------------------------------------------------------

func (p *Parser) nodes() ([]*dom.Node, error) {
	var nodes []*dom.Node
	if err := p.skipTrivia(); err != nil {
		return nil, err
	}
	for !p.cursor.AtEnd() && !p.cursor.StartsWith("</") {
		node, err := p.node()
		if err != nil {
			return nil, err
		}
		nodes = appendNode(nodes, node)
		if err := p.skipTrivia(); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// appendNode merges a text node into a preceding text sibling. Siblings of
// this kind occur when a comment separates two runs of text.
func appendNode(nodes []*dom.Node, node *dom.Node) []*dom.Node {
	if len(nodes) > 0 {
		prev := nodes[len(nodes)-1]
		if a, ok := prev.Text(); ok {
			if b, ok := node.Text(); ok {
				prev.Payload = dom.Text(a + b)
				return nodes
			}
		}
	}
	return append(nodes, node)
}

func (p *Parser) node() (*dom.Node, error) {
	if p.cursor.PeekIs('<') {
		return p.element()
	}
	return p.text(), nil
}

// skipTrivia skips white space and comments.
func (p *Parser) skipTrivia() error {
	c := p.cursor
	for {
		c.SkipWhitespace()
		if !c.StartsWith("<!--") {
			return nil
		}
		start := c.Pos()
		c.Advance(4)
		comment, found := c.ConsumeUntil("-->")
		if !found {
			return diagnostics.Errorf(diagnostics.Bounds, start, "unterminated comment")
		}
		c.Advance(3)
		p.sink.Add(diagnostics.Info, "offset %d: skipped comment of length %d", start, len(comment))
	}
}

func (p *Parser) text() *dom.Node {
	text := p.cursor.ConsumeWhile(func(r rune) bool { return r != '<' })
	return dom.NewText(text)
}

func (p *Parser) element() (*dom.Node, error) {
	c := p.cursor
	if err := c.Expect("<"); err != nil {
		return nil, err
	}
	tagName := c.Identifier()
	if tagName == "" {
		return nil, p.unexpected("tag name")
	}
	attrs, err := p.attributes()
	if err != nil {
		return nil, err
	}
	if c.StartsWith("/>") {
		c.Advance(2)
		return dom.NewElement(tagName, attrs), nil
	}
	if err := c.Expect(">"); err != nil {
		return nil, err
	}
	children, err := p.nodes()
	if err != nil {
		return nil, err
	}
	if err := c.Expect("</"); err != nil {
		return nil, err
	}
	start := c.Pos()
	if closing := c.Identifier(); closing != tagName {
		return nil, diagnostics.Errorf(diagnostics.Mismatch, start,
			"closing tag </%s> does not match <%s>", closing, tagName)
	}
	if err := c.Expect(">"); err != nil {
		return nil, err
	}
	return dom.NewElement(tagName, attrs, children...), nil
}

func (p *Parser) attributes() (map[string]string, error) {
	c := p.cursor
	attrs := make(map[string]string)
	c.SkipWhitespace()
	for {
		r, ok := c.Peek()
		if !ok {
			return nil, c.Errorf(diagnostics.Bounds, "unexpected end of input in tag")
		}
		if r == '>' || r == '/' {
			return attrs, nil
		}
		name, value, err := p.attribute()
		if err != nil {
			return nil, err
		}
		if _, dup := attrs[name]; dup {
			p.sink.Add(diagnostics.Warning, "offset %d: repeated attribute %q, last value wins",
				c.Pos(), name)
		}
		attrs[name] = value
		if r, ok := c.Peek(); ok && r != '>' && r != '/' && !unicode.IsSpace(r) {
			return nil, c.Errorf(diagnostics.Mismatch, "expected white space after attribute %q", name)
		}
		c.SkipWhitespace()
	}
}

func (p *Parser) attribute() (string, string, error) {
	c := p.cursor
	name := c.Identifier()
	if name == "" {
		return "", "", p.unexpected("attribute name")
	}
	if err := c.Expect("="); err != nil {
		return "", "", err
	}
	start := c.Pos()
	quote, err := c.Next()
	if err != nil {
		return "", "", err
	}
	if quote != '"' && quote != '\'' {
		return "", "", diagnostics.Errorf(diagnostics.Mismatch, start,
			"expected quoted value for attribute %q, found %q", name, quote)
	}
	value := c.ConsumeWhile(func(r rune) bool { return r != quote })
	if err := c.Expect(string(quote)); err != nil {
		return "", "", err
	}
	return name, value, nil
}

func (p *Parser) unexpected(what string) error {
	r, ok := p.cursor.Peek()
	if !ok {
		return p.cursor.Errorf(diagnostics.Bounds, "expected %s, but input ends", what)
	}
	return p.cursor.Errorf(diagnostics.Mismatch, "expected %s, found %q", what, r)
}
