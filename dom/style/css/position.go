package css

import (
	"strings"

	"github.com/npillmayer/webcore/dom/style"
	"github.com/npillmayer/webcore/dom/styledtree"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

// PositionOffset is one of the offsets top, right, bottom and left.
type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left) into
// a 4-way slice, ordered by PDir. Invalid PDir-s are silently dropped.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		norm[i].Dir = i
	}
	for _, o := range offsets {
		if o.Dir >= Top && o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

// ZeroOffsets returns (Top, Right, Bottom, Left) = (0, 0, 0, 0)
func ZeroOffsets() []PositionOffset {
	zeros := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		zeros[i].Dir = i
	}
	return zeros
}

/*
type PositionT
	= Undefined
	| Static
	| Relative top right bottom left
	| Absolute top right bottom left
	| Fixed top right bottom left
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given optional offsets.
// offsets may be provied partially or none at all.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional offsets.
// offsets may be provied partially or none at all.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
// offsets may be provied partially or none at all.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

var positionNames = [...]string{"unset", "static", "relative", "absolute", "fixed"}

func (p PositionT) String() string {
	return positionNames[p.kind]
}

// Offsets returns the offsets of a relative, absolute or fixed position,
// ordered top, right, bottom, left.
func (p PositionT) Offsets() []PositionOffset {
	return p.offsets
}

var offsetKeys = [...]string{"top", "right", "bottom", "left"}

// Position returns an optional position type from a property value.
// It will never return an error, even with illegal input, but instead will then
// return an unset position. Offsets are all unset.
func Position(v style.Value) PositionT {
	k, ok := v.(style.Keyword)
	if !ok {
		return PositionT{}
	}
	switch strings.ToLower(string(k)) {
	case "static":
		return Static()
	case "relative":
		return Relative(nil)
	case "absolute":
		return Absolute(nil)
	case "fixed":
		return Fixed(nil)
	}
	return PositionT{}
}

// PositionOf returns the position of a styled node, including offsets
// from properties top, right, bottom and left. Static positions do not
// carry offsets.
func PositionOf(sn *styledtree.StyNode) PositionT {
	v, ok := sn.Value("position")
	if !ok {
		return PositionT{}
	}
	pos := Position(v)
	if pos.kind == positionUnset || pos.kind == positionStatic {
		return pos
	}
	for dir, key := range offsetKeys {
		pos.offsets[dir].Dim = DimenOf(sn, key)
	}
	return pos
}

// ---------------------------------------------------------------------------

// Match starts pattern matching on a position.
func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

// PMatcher is a helper for pattern matching on PositionT.
type PMatcher struct {
	pos PositionT
}

func (m *PMatcher) IsKind(p PositionT) *PMatcher {
	switch {
	case p.kind == positionUnset && m.pos.kind == positionUnset:
		return m
	case p.kind == positionStatic && m.pos.kind == positionStatic:
		return m
	case p.kind == positionRelative && m.pos.kind == positionRelative:
		return m
	case p.kind == positionAbsolute && m.pos.kind == positionAbsolute:
		return m
	case p.kind == positionFixed && m.pos.kind == positionFixed:
		return m
	}
	return nil
}

func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	if m.pos.kind == positionAbsolute {
		if o != nil {
			*o = m.pos.offsets
		}
		return m
	}
	return nil
}

func (m *PMatcher) Relative(o *[]PositionOffset) *PMatcher {
	if m.pos.kind == positionRelative {
		if o != nil {
			*o = m.pos.offsets
		}
		return m
	}
	return nil
}

func (m *PMatcher) Fixed(o *[]PositionOffset) *PMatcher {
	if m.pos.kind == positionFixed {
		if o != nil {
			*o = m.pos.offsets
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// PositionPatterns holds a result for every kind of position.
type PositionPatterns[T any] struct {
	Unset    T
	Static   T
	Absolute T
	Relative T
	Fixed    T
	Default  T
}

// PositionPattern starts an expression matching on p.
func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended to be instantiated
// using PositionPattern only.
type PMatchExpr[T any] struct {
	pos PositionT
}

func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch {
	case m.pos.kind == positionUnset:
		return patterns.Unset
	case m.pos.kind == positionStatic:
		return patterns.Static
	case m.pos.kind == positionAbsolute:
		return patterns.Absolute
	case m.pos.kind == positionRelative:
		return patterns.Relative
	case m.pos.kind == positionFixed:
		return patterns.Fixed
	}
	return patterns.Default
}

// With unpacks the offsets of the position into o.
func (m *PMatchExpr[T]) With(o *[]PositionOffset) *PMatchExpr[T] {
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

func (m *PMatchExpr[T]) Const(x T) T {
	return x
}

// ---------------------------------------------------------------------------

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsRelative returns true if p represents a valid relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p represents a valid absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}
