package css_test

import (
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/npillmayer/webcore/dom/style"
	"github.com/npillmayer/webcore/dom/style/css"
	"github.com/stretchr/testify/assert"
)

func TestDimenBasic(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	switch m := ten.Match(); m {
	case m.Just(&du):
		t.Logf("du = %v", du)
	default:
		t.Errorf("expected Just(10pt) to be a fixed value, isn't: %#v", ten)
	}

	auto := css.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(css.Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}

	pcnt := css.Percentage(percent.FromInt(80))
	var p percent.Percent
	switch m := pcnt.Match(); m {
	case m.IsKind(css.EM(1)):
		t.Errorf("expected percentage not to match kind em")
	case m.Percentage(&p):
		t.Logf("percent = %v", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
}

func TestDimenPattern(t *testing.T) {
	ten := css.JustDimen(dimen.PT * 10)
	var du dimen.DU
	m := css.DimenPattern[int](ten)
	zehn := m.OneOf(css.DimenPatterns[int]{
		Just:    m.With(&du).Const(10),
		Auto:    0,
		Default: -1,
	})
	assert.Equal(t, 10, zehn)

	e := css.DimenPattern[dimen.DU](ten)
	distance := e.OneOf(css.DimenPatterns[dimen.DU]{
		Just:    e.With(&du).Const(2 * du),
		Auto:    0,
		Default: -1,
	})
	assert.Equal(t, 2*10*dimen.PT, distance)

	inherit := css.DimenPattern[string](css.Inherit())
	assert.Equal(t, "inherit", inherit.OneOf(css.DimenPatterns[string]{
		Inherit: "inherit",
		Default: "other",
	}))
}

func TestDimenFromValue(t *testing.T) {
	var du dimen.DU
	d := css.DimenFromValue(style.Length{Amount: 4, Unit: style.Px})
	if assert.True(t, d.IsAbsolute()) {
		d.Match().Just(&du)
		assert.Equal(t, 3*dimen.PT, du)
	}
	var p percent.Percent
	d = css.DimenFromValue(style.Length{Amount: 50, Unit: style.Percent})
	assert.True(t, d.IsRelative())
	assert.NotNil(t, d.Match().Percentage(&p))
	assert.Equal(t, percent.FromInt(50), p)
	var factor float64
	d = css.DimenFromValue(style.Length{Amount: 1.5, Unit: style.Rem})
	assert.NotNil(t, d.Match().FontRelative(&factor))
	assert.Equal(t, 1.5, factor)
	assert.Equal(t, "1.5rem", d.String())
	assert.Equal(t, "auto", css.DimenFromValue(style.Keyword("AUTO")).String())
	assert.Equal(t, "initial", css.DimenFromValue(style.Keyword("initial")).String())
	assert.True(t, css.DimenFromValue(style.Keyword("0")).IsAbsolute())
	assert.True(t, css.DimenFromValue(style.Keyword("wide")).IsNone())
	assert.True(t, css.DimenFromValue(style.Color{}).IsNone())
	assert.True(t, css.DimenFromValue(nil).IsNone())
}
