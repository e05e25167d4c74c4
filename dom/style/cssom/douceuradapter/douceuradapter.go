/*
Package douceuradapter creates CSSOM stylesheets with the help of package
douceur.

Douceur is a lenient CSS parser for the full CSS syntax. This adapter
converts its output into a cssom.StyleSheet. Everything the CSSOM cannot
express is dropped and reported as a warning: at-rules, rules with
selectors other than simple selectors, declarations marked !important
(the flag, not the declaration) and unsupported values.

The adapter is an alternative to package cssparser, which is strict: any
syntax error is fatal there.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/webcore/diagnostics"
	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/dom/style/cssom"
	"github.com/npillmayer/webcore/dom/style/cssom/cssparser"
	"github.com/pkg/errors"
)

// tracer traces with key 'webcore.douceur'.
func tracer() tracing.Trace {
	return tracing.Select("webcore.douceur")
}

// Parse parses CSS text with douceur and converts the result into a
// stylesheet. Only syntax errors detected by douceur are fatal.
func Parse(text string, sink *diagnostics.Sink) (*cssom.StyleSheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		sink.AddError(err.Error())
		return nil, errors.Wrap(err, "douceur")
	}
	return Convert(sheet, sink), nil
}

// Convert converts a douceur stylesheet. Rules are kept in source order.
func Convert(sheet *css.Stylesheet, sink *diagnostics.Sink) *cssom.StyleSheet {
	result := cssom.NewStyleSheet()
	if sheet == nil {
		return result
	}
	for _, r := range sheet.Rules {
		if rule := convertRule(r, sink); rule != nil {
			result.AppendRules(cssom.NewStyleSheet(rule))
		}
	}
	tracer().Debugf("converted %d of %d douceur rules", len(result.Rules()), len(sheet.Rules))
	return result
}

func convertRule(r *css.Rule, sink *diagnostics.Sink) *cssom.Rule {
	if r == nil {
		return nil
	}
	if r.Kind == css.AtRule {
		sink.Add(diagnostics.Warning, "at-rule %s not supported, skipped", r.Name)
		return nil
	}
	selectors, err := cssparser.ParseSelectors(strings.Join(r.Selectors, ","), nil)
	if err != nil {
		sink.Add(diagnostics.Warning, "rule %q skipped: %v", r.Prelude, err)
		return nil
	}
	var declarations []cssom.Declaration
	for _, d := range r.Declarations {
		if d.Important {
			sink.Add(diagnostics.Warning, "!important ignored for property %s", d.Property)
		}
		v, err := cssparser.ParseValue(d.Value, nil)
		if err != nil {
			sink.Add(diagnostics.Warning, "declaration %s: %s skipped: %v", d.Property, d.Value, err)
			continue
		}
		declarations = append(declarations, cssom.Declaration{Name: d.Property, Value: v})
	}
	return cssom.NewRule(selectors, declarations)
}

// ExtractStyleElements searches a document for embedded <style> elements
// and parses their content with douceur. The rules of all style elements are
// collected into a single stylesheet, in document order.
func ExtractStyleElements(doc *dom.Document, sink *diagnostics.Sink) (*cssom.StyleSheet, error) {
	sheet := cssom.NewStyleSheet()
	if doc == nil {
		return sheet, nil
	}
	for i, n := range doc.ElementsByTagName("style") {
		css, err := Parse(n.TextContent(), sink)
		if err != nil {
			return nil, errors.Wrapf(err, "style element #%d", i+1)
		}
		sheet.AppendRules(css)
	}
	return sheet, nil
}
