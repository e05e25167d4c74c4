package css_test

import (
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/webcore/dom/style"
	"github.com/npillmayer/webcore/dom/style/css"
	"github.com/stretchr/testify/assert"
)

func TestPositionBasic(t *testing.T) {
	a := css.Absolute(nil)
	var o []css.PositionOffset
	switch m := a.Match(); m {
	case m.Absolute(&o):
		t.Logf("offsets = %v", o)
	default:
		t.Errorf("expected Absolute() to be an absolute position, isn't: %#v", a)
	}
	assert.True(t, a.IsAbsolute())
	assert.Len(t, o, 4)

	static := css.Static()
	switch m := static.Match(); m {
	case m.IsKind(css.Static()):
		t.Logf("position is static")
	default:
		t.Errorf("expected position to match kind(static), isn't: %#v", static)
	}
}

func TestPositionPattern(t *testing.T) {
	o := []css.PositionOffset{
		{Dim: css.JustDimen(10 * dimen.PT), Dir: css.Bottom},
	}
	f := css.Fixed(o)
	m := css.PositionPattern[int](f)
	out := m.OneOf(css.PositionPatterns[int]{
		Unset:   10,
		Fixed:   99,
		Default: -1,
	})
	assert.Equal(t, 99, out)

	e := css.PositionPattern[[]css.PositionOffset](f)
	off := e.OneOf(css.PositionPatterns[[]css.PositionOffset]{
		Fixed:    e.With(&o).Const(o),
		Relative: css.ZeroOffsets(),
		Default:  css.ZeroOffsets(),
	})
	t.Logf("offsets = %v", off)
	assert.Len(t, off, 4)
	assert.True(t, off[css.Bottom].Dim.IsAbsolute())
}

func TestPositionFromValue(t *testing.T) {
	pos := css.Position(style.Keyword("Absolute"))
	m := css.PositionPattern[string](pos)
	x := m.OneOf(css.PositionPatterns[string]{
		Unset:    "NONE",
		Absolute: "ABSOLUTE",
		Default:  "NONE",
	})
	assert.Equal(t, "ABSOLUTE", x)
	assert.Equal(t, "static", css.Position(style.Keyword("static")).String())
	assert.True(t, css.Position(style.Keyword("sticky")).IsUnset())
	assert.True(t, css.Position(style.Length{Amount: 1}).IsUnset())
}
