/*
Package webcore is a minimal document front-end: it parses markup into a
document tree, parses stylesheets into a CSS object model and resolves the
cascade, resulting in a styled tree.

	doc, err := webcore.ParseHTML(`<div id="x"><p>Hello</p></div>`)
	…
	sheet, err := webcore.ParseCSS(`div { display: block; } #x { color: red; }`)
	…
	styled := webcore.Style(doc, sheet)

The styled tree mirrors the document tree node by node and is the hand-off
to downstream consumers (layout, painting); package dom/style/css offers
typed access to its properties.

Packages

	dom                       document tree, serializer, queries
	dom/markup                markup parser
	dom/style                 property values and property maps
	dom/style/cssom           stylesheets and the cascade
	dom/style/cssom/cssparser stylesheet parser
	dom/style/cssom/douceuradapter  alternative, lenient stylesheet parser
	dom/styledtree            the styled tree
	dom/style/css             typed property readers
	dom/domdbg                debugging output
	diagnostics               diagnostics sink and parse errors

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package webcore

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'webcore'.
func tracer() tracing.Trace {
	return tracing.Select("webcore")
}
