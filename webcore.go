package webcore

import (
	"github.com/npillmayer/webcore/diagnostics"
	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/dom/markup"
	"github.com/npillmayer/webcore/dom/style/cssom"
	"github.com/npillmayer/webcore/dom/style/cssom/cssparser"
	"github.com/npillmayer/webcore/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/webcore/dom/styledtree"
	"github.com/pkg/errors"
)

// ParseHTML parses markup text into a document.
func ParseHTML(text string) (*dom.Document, error) {
	return markup.Parse(text)
}

// ParseCSS parses stylesheet text.
func ParseCSS(text string) (*cssom.StyleSheet, error) {
	return cssparser.Parse(text)
}

// Style resolves the cascade for every top-level node of doc. The result
// contains one styled tree per top-level node, in document order.
func Style(doc *dom.Document, sheet *cssom.StyleSheet) []*styledtree.StyNode {
	return cssom.StyleDocument(doc, sheet)
}

// --- Loading ---------------------------------------------------------------

// Engine selects a stylesheet parser.
type Engine int

// Stylesheet parsers.
const (
	Native  Engine = iota // strict parser of package cssparser
	Douceur               // lenient parser of package douceuradapter
)

// ParseEngine maps "native" or "douceur" to an Engine.
func ParseEngine(name string) (Engine, error) {
	switch name {
	case "", "native":
		return Native, nil
	case "douceur":
		return Douceur, nil
	}
	return Native, errors.Errorf("unknown stylesheet engine %q", name)
}

func (e Engine) String() string {
	if e == Douceur {
		return "douceur"
	}
	return "native"
}

type options struct {
	engine        Engine
	sink          *diagnostics.Sink
	styleElements bool
}

// Option configures Load.
type Option func(*options)

// WithEngine selects the stylesheet parser. Default is Native.
func WithEngine(e Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithSink collects diagnostics of all parsers into sink.
func WithSink(sink *diagnostics.Sink) Option {
	return func(o *options) {
		o.sink = sink
	}
}

// WithoutStyleElements ignores <style> elements embedded in the document.
func WithoutStyleElements() Option {
	return func(o *options) {
		o.styleElements = false
	}
}

// Result is a parsed and styled document.
type Result struct {
	Document   *dom.Document
	StyleSheet *cssom.StyleSheet
	Styled     []*styledtree.StyNode
}

// Load parses a document and a list of stylesheets and styles the document.
// The stylesheets are applied in the order given, followed by the <style>
// elements of the document. Any parse failure is fatal.
func Load(html string, stylesheets []string, opts ...Option) (*Result, error) {
	o := options{engine: Native, styleElements: true}
	for _, opt := range opts {
		opt(&o)
	}
	doc, err := markup.NewParser(html, o.sink).Parse()
	if err != nil {
		return nil, err
	}
	sheet := cssom.NewStyleSheet()
	for i, text := range stylesheets {
		css, err := o.parseCSS(text)
		if err != nil {
			return nil, errors.Wrapf(err, "stylesheet #%d", i+1)
		}
		sheet.AppendRules(css)
	}
	if o.styleElements {
		var embedded *cssom.StyleSheet
		if o.engine == Douceur {
			embedded, err = douceuradapter.ExtractStyleElements(doc, o.sink)
		} else {
			embedded, err = cssparser.ExtractStyleElements(doc, o.sink)
		}
		if err != nil {
			return nil, err
		}
		sheet.AppendRules(embedded)
	}
	tracer().Infof("styling document with %d rules (%s engine)", len(sheet.Rules()), o.engine)
	return &Result{
		Document:   doc,
		StyleSheet: sheet,
		Styled:     cssom.StyleDocument(doc, sheet),
	}, nil
}

func (o *options) parseCSS(text string) (*cssom.StyleSheet, error) {
	if o.engine == Douceur {
		return douceuradapter.Parse(text, o.sink)
	}
	return cssparser.NewParser(text, o.sink).Parse()
}
