package domdbg

import (
	"fmt"

	"github.com/npillmayer/webcore/dom/styledtree"
	tp "github.com/xlab/treeprint"
)

// Treeprint renders styled trees as indented text, one line per node and per
// property. Text nodes are shown quoted.
func Treeprint(roots ...*styledtree.StyNode) string {
	root := tp.New()
	for _, sn := range roots {
		addStyledNode(root, sn)
	}
	return root.String()
}

func addStyledNode(branch tp.Tree, sn *styledtree.StyNode) {
	if sn == nil {
		return
	}
	n := sn.DOMNode()
	if t, ok := n.Text(); ok {
		branch.AddNode(fmt.Sprintf("%q", t))
		return
	}
	label := "<" + n.TagName() + ">"
	if e, ok := n.Element(); ok {
		if id, ok := e.ID().Get(); ok {
			label += "#" + id
		}
		for _, c := range e.Classes().Sorted() {
			label += "." + c
		}
	}
	b := branch.AddBranch(label)
	for _, kv := range sn.Styles().Properties() {
		b.AddNode(kv.String())
	}
	for _, ch := range sn.StyledChildren() {
		addStyledNode(b, ch)
	}
}
