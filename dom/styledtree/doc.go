/*
Package styledtree implements the styled document tree.

Overview

A styled tree mirrors a document tree node by node. Every styled node links
back to its document node and carries the properties the cascade resolved
for it. Function cssom.Style will create a styled tree from a document tree
and a stylesheet.

Styled trees are derived data: they are built in one go and never modified
afterwards. Whenever the document or the stylesheet changes, clients rebuild
the styled tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'webcore.styledtree'.
func tracer() tracing.Trace {
	return tracing.Select("webcore.styledtree")
}
