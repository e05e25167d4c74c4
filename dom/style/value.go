package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Value is the value of a CSS declaration. It is a closed sum type of
// Keyword, Length and Color; no other types implement Value.
// All variants are comparable with ==.
type Value interface {
	isValue()
	String() string
}

// Keyword is a bare identifier value, e.g. "block" or "red".
type Keyword string

func (Keyword) isValue() {}

func (k Keyword) String() string {
	return string(k)
}

// Unit is the unit of a Length.
type Unit uint8

// Units for lengths.
const (
	Px Unit = iota
	Em
	Rem
	Percent
)

func (u Unit) String() string {
	switch u {
	case Px:
		return "px"
	case Em:
		return "em"
	case Rem:
		return "rem"
	case Percent:
		return "%"
	}
	return fmt.Sprintf("unit(%d)", uint8(u))
}

// UnitFromString maps a unit suffix ("px", "em", "rem", "%") to a Unit,
// ignoring case.
func UnitFromString(s string) (Unit, bool) {
	switch strings.ToLower(s) {
	case "px":
		return Px, true
	case "em":
		return Em, true
	case "rem":
		return Rem, true
	case "%":
		return Percent, true
	}
	return Px, false
}

// Length is a numeric value with a unit, e.g. 12px.
type Length struct {
	Amount float64
	Unit   Unit
}

func (Length) isValue() {}

func (l Length) String() string {
	return strconv.FormatFloat(l.Amount, 'f', -1, 64) + l.Unit.String()
}

// Color is an RGBA color value with non-premultiplied alpha.
// Color implements image/color.Color.
type Color struct {
	R, G, B, A uint8
}

func (Color) isValue() {}

// String returns the hex notation #rrggbb, or #rrggbbaa if the color is not
// opaque.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGBA is part of interface color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

var _ color.Color = Color{}
