package cssparser

import (
	"github.com/npillmayer/webcore/diagnostics"
	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/dom/style/cssom"
	"github.com/pkg/errors"
)

// ExtractStyleElements searches a document for embedded <style> elements
// and parses their content. The rules of all style elements are collected
// into a single stylesheet, in document order.
func ExtractStyleElements(doc *dom.Document, sink *diagnostics.Sink) (*cssom.StyleSheet, error) {
	sheet := cssom.NewStyleSheet()
	if doc == nil {
		return sheet, nil
	}
	for i, n := range doc.ElementsByTagName("style") {
		css, err := NewParser(n.TextContent(), sink).Parse()
		if err != nil {
			return nil, errors.Wrapf(err, "style element #%d", i+1)
		}
		sheet.AppendRules(css)
	}
	tracer().Debugf("extracted %d rules from style elements", len(sheet.Rules()))
	return sheet, nil
}
