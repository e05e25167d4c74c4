package cssom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/maybe"
)

// Specificity is the weight of a selector. It is reported as a triple
// (Tag, ID, Class), but compared with IDs first, then classes, then tags.
type Specificity struct {
	Tag   int // 1 if the selector names a tag
	ID    int // 1 if the selector names an id
	Class int // number of classes
}

// Compare returns -1, 0 or +1, depending on whether s is less specific,
// equally specific or more specific than other.
func (s Specificity) Compare(other Specificity) int {
	switch {
	case s.ID != other.ID:
		return sign(s.ID - other.ID)
	case s.Class != other.Class:
		return sign(s.Class - other.Class)
	}
	return sign(s.Tag - other.Tag)
}

// Less is true if s is less specific than other.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.Tag, s.ID, s.Class)
}

func sign(n int) int {
	if n < 0 {
		return -1
	} else if n > 0 {
		return 1
	}
	return 0
}

// Selector selects elements of a document tree. Selector is a closed type;
// the only variant is Simple.
type Selector interface {
	isSelector()
	Specificity() Specificity
	Matches(*dom.Element) bool
	String() string
}

// Simple is a simple selector, e.g. "div#main.note.wide". All of its parts
// have to match an element. A simple selector without any parts matches every
// element and is written as "*".
type Simple struct {
	TagName maybe.Maybe[string]
	ID      maybe.Maybe[string]
	Classes []string // source order, all required
}

func (*Simple) isSelector() {}

// Specificity of a simple selector.
func (sel *Simple) Specificity() Specificity {
	sp := Specificity{Class: len(sel.Classes)}
	if _, ok := maybe.Unpack(sel.TagName); ok {
		sp.Tag = 1
	}
	if _, ok := maybe.Unpack(sel.ID); ok {
		sp.ID = 1
	}
	return sp
}

// Matches is true if e has the selector's tag name and id (if given) and
// carries every one of the selector's classes.
func (sel *Simple) Matches(e *dom.Element) bool {
	if e == nil {
		return false
	}
	if tag, ok := maybe.Unpack(sel.TagName); ok && tag != e.TagName {
		return false
	}
	if id, ok := maybe.Unpack(sel.ID); ok {
		if eid, found := e.ID().Get(); !found || eid != id {
			return false
		}
	}
	if len(sel.Classes) > 0 {
		classes := e.Classes()
		for _, c := range sel.Classes {
			if !classes.Has(c) {
				return false
			}
		}
	}
	return true
}

func (sel *Simple) String() string {
	var b strings.Builder
	if tag, ok := maybe.Unpack(sel.TagName); ok {
		b.WriteString(tag)
	}
	if id, ok := maybe.Unpack(sel.ID); ok {
		b.WriteString("#" + id)
	}
	for _, c := range sel.Classes {
		b.WriteString("." + c)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

// Equal compares two simple selectors part by part. Class order matters.
func (sel *Simple) Equal(other *Simple) bool {
	if !maybe.Equal(sel.TagName, other.TagName) || !maybe.Equal(sel.ID, other.ID) {
		return false
	}
	if len(sel.Classes) != len(other.Classes) {
		return false
	}
	for i, c := range sel.Classes {
		if other.Classes[i] != c {
			return false
		}
	}
	return true
}

// SelectorsEqual compares two selectors of any variant.
func SelectorsEqual(a, b Selector) bool {
	sa, oka := a.(*Simple)
	sb, okb := b.(*Simple)
	return oka && okb && sa.Equal(sb)
}
