/*
Package dom provides the document tree model: nodes, elements and their
attributes, and an optional doctype.

Status

Early draft: API may change frequently. Please stay patient.

Overview

A document tree is created by the markup parser (package dom/markup) and is
immutable afterwards. Every node carries a payload, which is either a Text or
an *Element, and an ordered list of children. Payload is a closed sum type:

    switch p := node.Payload.(type) {
    case dom.Text:
        …
    case *dom.Element:
        …
    }

Styling and layout of documents involve operations on different trees.
The styled tree (package dom/styledtree) mirrors a document tree 1:1 and
references its nodes, but never owns them. Clients must not modify a document
tree while styled trees derived from it are in use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'webcore.dom'
func tracer() tracing.Trace {
	return tracing.Select("webcore.dom")
}
