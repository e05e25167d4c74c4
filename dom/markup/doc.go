/*
Package markup is a strict recursive-descent parser for markup text.

Status

This is not an HTML5 parser. It understands a well-formed subset: an
optional doctype, elements with quoted attributes, self-closing elements,
text and comments. Every structural violation aborts the parse; there is
no error recovery and no implied closing of elements.

Grammar

    document   := doctype? nodes
    doctype    := '<!' ident name ('PUBLIC' quoted)? ('SYSTEM' quoted)? '>'
    nodes      := (trivia node)*                  -- up to end or '</'
    node       := element | text
    element    := '<' name attribute* ( '/>' | '>' nodes '</' name '>' )
    attribute  := name '=' ( '"' [^"]* '"' | '\'' [^']* '\'' )
    text       := [^<]+
    trivia     := ( whitespace | '<!--' … '-->' )*

Names consist of ASCII letters, digits, '-' and '_'. Text is taken verbatim,
entities are not decoded and white space is not collapsed.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webcore.markup'.
func tracer() tracing.Trace {
	return tracing.Select("webcore.markup")
}
