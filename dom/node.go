package dom

import (
	"strings"

	"github.com/npillmayer/webcore/maybe"
)

// Payload is the content of a node: either Text or *Element.
// No other types implement Payload.
type Payload interface {
	isPayload()
}

// Text is the payload of a text node.
type Text string

func (Text) isPayload() {}

// Node is a node of a document tree.
type Node struct {
	Payload  Payload // Text or *Element
	Children []*Node // ordered children
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Payload: Text(text)}
}

// NewElement creates an element node. attrs may be nil.
func NewElement(tagName string, attrs map[string]string, children ...*Node) *Node {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return &Node{
		Payload:  &Element{TagName: tagName, Attributes: attrs},
		Children: children,
	}
}

// Element returns the element payload of n, if n is an element node.
func (n *Node) Element() (*Element, bool) {
	if n == nil {
		return nil, false
	}
	e, ok := n.Payload.(*Element)
	return e, ok
}

// Text returns the text of n, if n is a text node.
func (n *Node) Text() (string, bool) {
	if n == nil {
		return "", false
	}
	t, ok := n.Payload.(Text)
	return string(t), ok
}

// IsText is a predicate for text nodes.
func (n *Node) IsText() bool {
	_, ok := n.Text()
	return ok
}

// TagName returns the tag name of an element node, or "" for text nodes.
func (n *Node) TagName() string {
	if e, ok := n.Element(); ok {
		return e.TagName
	}
	return ""
}

// NodeName returns the tag name of an element node, or "#text" for text
// nodes, following W3C conventions.
func (n *Node) NodeName() string {
	if n.IsText() {
		return "#text"
	}
	return n.TagName()
}

// TextContent concatenates the text of n and all its descendents.
func (n *Node) TextContent() string {
	var b strings.Builder
	n.Walk(func(node *Node) bool {
		if t, ok := node.Text(); ok {
			b.WriteString(t)
		}
		return true
	})
	return b.String()
}

// Walk visits the sub-tree rooted at n in document order (depth-first,
// pre-order). If f returns false, the children of the current node are
// skipped.
func (n *Node) Walk(f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, ch := range n.Children {
		ch.Walk(f)
	}
}

// Equal reports whether two trees are structurally equal: same payloads,
// same attributes, same children in the same order.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch p := a.Payload.(type) {
	case Text:
		if t, ok := b.Payload.(Text); !ok || t != p {
			return false
		}
	case *Element:
		e, ok := b.Payload.(*Element)
		if !ok || !p.Equal(e) {
			return false
		}
	default:
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// --- Doctype and Document --------------------------------------------------

// Doctype holds the data of a document type declaration.
type Doctype struct {
	Name     string
	PublicID maybe.Maybe[string]
	SystemID maybe.Maybe[string]
}

// NewDoctype creates a doctype without public or system identifiers.
func NewDoctype(name string) *Doctype {
	return &Doctype{
		Name:     name,
		PublicID: maybe.Nothing[string](),
		SystemID: maybe.Nothing[string](),
	}
}

// Document is the root of a parsed document: an optional doctype and the
// top-level nodes.
type Document struct {
	Doctype  *Doctype // may be nil
	Children []*Node
}

// ElementsByTagName returns all elements with a given tag name, in document
// order.
func (doc *Document) ElementsByTagName(tagName string) []*Node {
	var result []*Node
	for _, ch := range doc.Children {
		ch.Walk(func(n *Node) bool {
			if n.TagName() == tagName {
				result = append(result, n)
			}
			return true
		})
	}
	return result
}

// ElementByID returns the first element with a given id, in document order.
func (doc *Document) ElementByID(id string) (*Node, bool) {
	var found *Node
	for _, ch := range doc.Children {
		ch.Walk(func(n *Node) bool {
			if found != nil {
				return false
			}
			if e, ok := n.Element(); ok && maybe.Equal(e.ID(), maybe.Just(id)) {
				found = n
				return false
			}
			return true
		})
	}
	return found, found != nil
}

// Equal reports whether two documents are structurally equal.
func (doc *Document) Equal(other *Document) bool {
	if doc == nil || other == nil {
		return doc == other
	}
	if (doc.Doctype == nil) != (other.Doctype == nil) {
		return false
	}
	if doc.Doctype != nil {
		if doc.Doctype.Name != other.Doctype.Name ||
			!maybe.Equal(doc.Doctype.PublicID, other.Doctype.PublicID) ||
			!maybe.Equal(doc.Doctype.SystemID, other.Doctype.SystemID) {
			return false
		}
	}
	if len(doc.Children) != len(other.Children) {
		return false
	}
	for i := range doc.Children {
		if !Equal(doc.Children[i], other.Children[i]) {
			return false
		}
	}
	return true
}
