/*
Package css provides typed access to CSS properties of styled nodes.

CSS properties are plentyful and some of them are complicated.
This package trys to shield downstream clients (layout, painting) from the
handling of raw property values: it interprets the values of a styled node
as display modes, dimensions, positions and colors.

The cascade does not know about inheritance nor initial values. Readers
therefore decide on defaults themselves; e.g., an element without a
"display" property is an inline element.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webcore.css'.
func tracer() tracing.Trace {
	return tracing.Select("webcore.css")
}
