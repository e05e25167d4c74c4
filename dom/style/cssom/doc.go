/*
Package cssom provides functionality for CSS styling.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. Package cssom
holds the stylesheet model (rules, selectors, declarations) and the cascade,
which resolves a stylesheet against a document tree and yields a styled tree.

Stylesheets are produced by parsers, see sub-packages cssparser and
douceuradapter. A stylesheet is ordered: the position of a rule is relevant
for resolving conflicts between rules of equal specificity.

Scope

Selectors are simple selectors only, i.e. a conjunction of an optional tag
name, an optional id and any number of classes. There are no combinators, no
pseudo-classes and no at-rules. The cascade knows neither !important nor
inheritance nor initial values: a property is set on an element if and only
if a matching rule declares it.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'webcore.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("webcore.cssom")
}
