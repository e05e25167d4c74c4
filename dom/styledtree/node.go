package styledtree

import (
	"fmt"

	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/dom/style"
	"github.com/npillmayer/webcore/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	domNode             *dom.Node
	computedStyles      *style.PropertyMap
}

// NewNodeForDOMNode creates a new styled node linked to a document node.
// The node starts out with an empty property map.
func NewNodeForDOMNode(n *dom.Node) *StyNode {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.domNode = n
	sn.computedStyles = style.NewPropertyMap()
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// DOMNode gets the document node corresponding to this styled node.
func (sn *StyNode) DOMNode() *dom.Node {
	return sn.domNode
}

// Styles returns the properties of this node. It is never nil.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	if styles == nil {
		styles = style.NewPropertyMap()
	}
	sn.computedStyles = styles
}

// Lookup returns the value of property key. If key is not set, it tries
// fallback, and returns def if neither is set.
func (sn *StyNode) Lookup(key, fallback string, def style.Value) style.Value {
	return sn.computedStyles.Lookup(key, fallback, def)
}

// Value is a convenience for Lookup without fallback. ok is false if key
// is not set.
func (sn *StyNode) Value(key string) (style.Value, bool) {
	return sn.computedStyles.Property(key)
}

// AddStyledChild appends a child and returns sn, to allow chaining.
func (sn *StyNode) AddStyledChild(ch *StyNode) *StyNode {
	if ch != nil {
		sn.AddChild(&ch.Node)
	}
	return sn
}

// StyledChildren returns the children of sn in order.
func (sn *StyNode) StyledChildren() []*StyNode {
	children := sn.Children()
	r := make([]*StyNode, len(children))
	for i, ch := range children {
		r[i] = Node(ch)
	}
	return r
}

// ParentNode returns the styled parent, or nil for a root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// Walk visits sn and its descendents in pre-order, passing the depth
// relative to sn. Visiting stops early if f returns false.
func (sn *StyNode) Walk(f func(*StyNode, int) bool) {
	sn.Each(func(n *tree.Node[*StyNode], depth int) bool {
		return f(n.Payload, depth)
	})
}

func (sn *StyNode) String() string {
	if sn == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s", sn.domNode.NodeName(), sn.computedStyles)
}

// Debug traces the styled subtree of sn.
func (sn *StyNode) Debug() {
	sn.Walk(func(n *StyNode, depth int) bool {
		tracer().Debugf("%*s%s", 2*depth, "", n)
		return true
	})
}
