package dom

import (
	"sort"
	"strings"

	"github.com/npillmayer/webcore/maybe"
)

// Element is the payload of an element node.
type Element struct {
	TagName    string
	Attributes map[string]string // keys are unique; iteration order is meaningless
}

func (*Element) isPayload() {}

// Attribute returns the value of an attribute, if present.
func (e *Element) Attribute(name string) maybe.Maybe[string] {
	v, ok := e.Attributes[name]
	return maybe.Of(v, ok)
}

// ID returns the value of the "id" attribute, if present.
func (e *Element) ID() maybe.Maybe[string] {
	return e.Attribute("id")
}

// Classes splits the value of the "class" attribute on single spaces.
// Empty class names are dropped. If the element has no "class" attribute,
// the empty set is returned.
func (e *Element) Classes() ClassSet {
	value, ok := e.Attributes["class"]
	if !ok {
		return ClassSet{}
	}
	classes := make(ClassSet)
	for _, c := range strings.Split(value, " ") {
		if c != "" {
			classes[c] = struct{}{}
		}
	}
	return classes
}

// HasClass checks if name is one of the classes of e.
func (e *Element) HasClass(name string) bool {
	return e.Classes().Has(name)
}

// AttributeKeys returns the attribute names of e in lexicographic order.
// Serializations of elements use this order.
func (e *Element) AttributeKeys() []string {
	keys := make([]string, 0, len(e.Attributes))
	for k := range e.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal compares tag names and attributes.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.TagName != other.TagName || len(e.Attributes) != len(other.Attributes) {
		return false
	}
	for k, v := range e.Attributes {
		if w, ok := other.Attributes[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// ClassSet is a set of class names. A nil ClassSet is an empty set.
type ClassSet map[string]struct{}

// Has checks for membership.
func (cs ClassSet) Has(name string) bool {
	_, ok := cs[name]
	return ok
}

// Sorted returns the class names in lexicographic order.
func (cs ClassSet) Sorted() []string {
	names := make([]string, 0, len(cs))
	for c := range cs {
		names = append(names, c)
	}
	sort.Strings(names)
	return names
}
