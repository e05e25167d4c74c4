package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
We manage a tree of nodes, each carrying a payload of type parameter T.
Nodes maintain a slice of children.

Trees built on this type (e.g., the styled tree) are constructed in one go and
are read-only afterwards, therefore nodes are not guarded by locks.
*/

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // ordered children
	Payload  T          // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children = append(node.children, ch)
		ch.parent = node
	}
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	if node == nil {
		return nil
	}
	return node.parent
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || node.ChildCount() <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a copy of the slice of children of a node.
func (node *Node[T]) Children() []*Node[T] {
	if node == nil {
		return nil
	}
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// Each visits the sub-tree rooted at node in depth-first pre-order.
// Visiting stops early if f returns false.
func (node *Node[T]) Each(f func(n *Node[T], depth int) bool) {
	node.each(f, 0)
}

func (node *Node[T]) each(f func(*Node[T], int) bool, depth int) bool {
	if node == nil {
		return true
	}
	if !f(node, depth) {
		return false
	}
	for _, ch := range node.children {
		if !ch.each(f, depth+1) {
			return false
		}
	}
	return true
}
