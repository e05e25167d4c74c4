/*
Package cssparser parses stylesheets into a CSSOM.

The accepted language is a small subset of CSS:

    stylesheet    := rule*
    rule          := selector_list '{' declaration* '}'
    selector_list := selector ( ',' selector )*
    selector      := ( tag | '#' id | '.' class | '*' )+
    declaration   := name ':' value ';'
    value         := '#' hex hex hex [hex] | number unit? | identifier

A selector holds at most one tag name and at most one id. Units are px, em,
rem and %. C-style comments may appear wherever white space is allowed. Any
violation of the grammar is fatal and reported as a *diagnostics.ParseError.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssparser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webcore.cssparser'.
func tracer() tracing.Trace {
	return tracing.Select("webcore.cssparser")
}
