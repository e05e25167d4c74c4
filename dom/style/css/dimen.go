package css

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/npillmayer/webcore/dom/style"
	"github.com/npillmayer/webcore/dom/styledtree"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenREM     uint32 = 0x0400
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// pxPerPt is the size of a CSS pixel in points.
const pxPerPt = 0.75

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	factor  float64 // for font-relative dimensions
	flags   uint32
}

/*
type DimenT
	= None
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
	| FontRel unit factor
*/

// Auto creates a dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a dimension of value `inherit`.
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a dimension of value `initial`.
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// EM creates a dimension relative to the font size of the element.
func EM(factor float64) DimenT {
	return DimenT{factor: factor, flags: dimenEM}
}

// REM creates a dimension relative to the font size of the root element.
func REM(factor float64) DimenT {
	return DimenT{factor: factor, flags: dimenREM}
}

// IsNone is true for an unset (or invalid) dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsAbsolute is true for fixed dimensions.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsRelative is true for percentages and font-relative dimensions.
func (d DimenT) IsRelative() bool {
	return d.flags&relativeMask > 0
}

func (d DimenT) String() string {
	switch {
	case d.flags == dimenAbsolute:
		return fmt.Sprint(d.d)
	case d.flags == dimenAuto:
		return "auto"
	case d.flags == dimenInherit:
		return "inherit"
	case d.flags == dimenInitial:
		return "initial"
	case d.flags == dimenPercent:
		return fmt.Sprint(d.percent)
	case d.flags == dimenEM:
		return fmt.Sprintf("%gem", d.factor)
	case d.flags == dimenREM:
		return fmt.Sprintf("%grem", d.factor)
	}
	return "none"
}

// DimenFromValue interprets a property value as a dimension.
// Pixels are converted to absolute dimensions. Values which are not
// dimensions result in an unset DimenT.
func DimenFromValue(v style.Value) DimenT {
	switch x := v.(type) {
	case style.Length:
		switch x.Unit {
		case style.Px:
			return JustDimen(dimen.DU(math.Round(x.Amount * pxPerPt * float64(dimen.PT))))
		case style.Percent:
			return Percentage(percent.FromInt(int(math.Round(x.Amount))))
		case style.Em:
			return EM(x.Amount)
		case style.Rem:
			return REM(x.Amount)
		}
	case style.Keyword:
		switch strings.ToLower(string(x)) {
		case "auto":
			return Auto()
		case "inherit":
			return Inherit()
		case "initial":
			return Initial()
		case "0":
			return JustDimen(0)
		}
	}
	return DimenT{}
}

// DimenOf returns property key of a styled node as a dimension.
func DimenOf(sn *styledtree.StyNode, key string) DimenT {
	v, ok := sn.Value(key)
	if !ok {
		return DimenT{}
	}
	d := DimenFromValue(v)
	if d.IsNone() {
		tracer().Debugf("property %s = %s is not a dimension", key, v)
	}
	return d
}

// ---------------------------------------------------------------------------

// Match starts pattern matching on a dimension:
//
//     var du dimen.DU
//     switch m := d.Match(); m {
//     case m.Just(&du):
//         …
//     case m.IsKind(css.Auto()):
//         …
//     }
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is a helper for pattern matching on DimenT.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	const mask = kindMask | relativeMask
	if m.dimen.flags&mask == d.flags&mask {
		return m
	}
	return nil
}

// Just matches fixed dimensions and unpacks the value into du.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches percentages and unpacks the value into p.
func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.flags == dimenPercent {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// FontRelative matches em and rem dimensions and unpacks their factor.
func (m *Matcher) FontRelative(factor *float64) *Matcher {
	if m.dimen.flags == dimenEM || m.dimen.flags == dimenREM {
		if factor != nil {
			*factor = m.dimen.factor
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds a result for every kind of dimension.
type DimenPatterns[T any] struct {
	Auto         T
	Inherit      T
	Initial      T
	Just         T
	Percent      T
	FontRelative T
	Default      T
}

// DimenPattern starts an expression matching on d. Example:
//
//     e := css.DimenPattern[dimen.DU](d)
//     width := e.OneOf(css.DimenPatterns[dimen.DU]{
//         Just:    e.With(&du).Const(du),
//         Auto:    available,
//         Default: 0,
//     })
//
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is part of pattern matching for DimenT and intended to be
// instantiated using DimenPattern only.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern for the kind of dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	case dimenPercent:
		return patterns.Percent
	case dimenEM, dimenREM:
		return patterns.FontRelative
	}
	return patterns.Default
}

// With unpacks the fixed value of the dimension into du.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const returns x.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
