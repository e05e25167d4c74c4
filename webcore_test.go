package webcore

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webcore/diagnostics"
	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/dom/style"
	"github.com/npillmayer/webcore/dom/style/cssom"
	"github.com/npillmayer/webcore/dom/styledtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, html, css string, property string) style.Value {
	doc, err := ParseHTML(html)
	require.NoError(t, err)
	sheet, err := ParseCSS(css)
	require.NoError(t, err)
	styled := Style(doc, sheet)
	require.Len(t, styled, 1)
	v, _ := styled[0].Value(property)
	return v
}

func TestSpecificityExamples(t *testing.T) {
	sheet, err := ParseCSS(`div#id.class { } #id { } .a.b.c { }`)
	require.NoError(t, err)
	rules := sheet.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, cssom.Specificity{Tag: 1, ID: 1, Class: 1}, rules[0].Selectors[0].Specificity())
	assert.Equal(t, cssom.Specificity{Tag: 0, ID: 1, Class: 0}, rules[1].Selectors[0].Specificity())
	assert.Equal(t, cssom.Specificity{Tag: 0, ID: 0, Class: 3}, rules[2].Selectors[0].Specificity())
	assert.True(t, rules[2].Selectors[0].Specificity().Less(rules[1].Selectors[0].Specificity()))
}

func TestTieBreakBySourceOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webcore")
	defer teardown()
	//
	v := resolve(t, `<div/>`, `div { color: red; } div { color: blue; }`, "color")
	assert.Equal(t, style.Keyword("blue"), v)
}

func TestSpecificityBeatsSourceOrder(t *testing.T) {
	v := resolve(t, `<div id="x"/>`, `#x { color: blue; } div { color: red; }`, "color")
	assert.Equal(t, style.Keyword("blue"), v)
	v = resolve(t, `<div id="x"/>`, `div { color: red; } #x { color: blue; }`, "color")
	assert.Equal(t, style.Keyword("blue"), v)
	v = resolve(t, `<p class="a"/>`, `.a { color: blue; } p { color: red; }`, "color")
	assert.Equal(t, style.Keyword("blue"), v)
}

func TestNoMatchMeansEmptyMap(t *testing.T) {
	doc, err := ParseHTML(`<span/>`)
	require.NoError(t, err)
	sheet, err := ParseCSS(`div { display: block; }`)
	require.NoError(t, err)
	styled := Style(doc, sheet)
	require.Len(t, styled, 1)
	assert.Equal(t, 0, styled[0].Styles().Size())
	assert.Equal(t, style.Keyword("inline"), styled[0].Lookup("display", "display", style.Keyword("inline")))
}

func TestHexColor(t *testing.T) {
	v := resolve(t, `<p/>`, `p { color: #ff0000; }`, "color")
	assert.Equal(t, style.Color{R: 255, G: 0, B: 0, A: 255}, v)
}

// styledNodeFor finds the styled node of a document node.
func styledNodeFor(roots []*styledtree.StyNode, n *dom.Node) *styledtree.StyNode {
	var found *styledtree.StyNode
	for _, root := range roots {
		root.Walk(func(sn *styledtree.StyNode, depth int) bool {
			if sn.DOMNode() == n {
				found = sn
			}
			return found == nil
		})
	}
	return found
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webcore")
	defer teardown()
	//
	html := `<!DOCTYPE html><html><head><style>p { color: green; }</style></head>
	<body><p class="x">Hi</p></body></html>`
	for _, engine := range []Engine{Native, Douceur} {
		sink := diagnostics.NewSink()
		r, err := Load(html, []string{`p { color: red; margin: 1px; }`}, WithEngine(engine), WithSink(sink))
		require.NoError(t, err, engine.String())
		assert.Len(t, r.StyleSheet.Rules(), 2, engine.String())
		require.Len(t, r.Styled, 1)
		ps := r.Document.ElementsByTagName("p")
		require.Len(t, ps, 1)
		sn := styledNodeFor(r.Styled, ps[0])
		require.NotNil(t, sn, engine.String())
		assert.Equal(t, style.Keyword("green"), sn.Lookup("color", "", nil), engine.String())
		assert.Equal(t, style.Length{Amount: 1, Unit: style.Px}, sn.Lookup("margin", "", nil), engine.String())
		assert.False(t, sink.HasErrors())
	}
}

func TestLoadWithoutStyleElements(t *testing.T) {
	r, err := Load(`<p><style>p { color: green; }</style></p>`, []string{`p { color: red; }`},
		WithoutStyleElements())
	require.NoError(t, err)
	assert.Len(t, r.StyleSheet.Rules(), 1)
	assert.Equal(t, style.Keyword("red"), r.Styled[0].Lookup("color", "", nil))
}

func TestLoadErrors(t *testing.T) {
	sink := diagnostics.NewSink()
	_, err := Load(`<p>`, nil, WithSink(sink))
	assert.True(t, errors.Is(err, diagnostics.ErrParse))
	assert.Len(t, sink.Errors(), 1)
	_, err = Load(`<p/>`, []string{`p { }`, `p { width: 3pt; }`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stylesheet #2")
	kind, ok := diagnostics.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, diagnostics.UnknownToken, kind)
	_, err = Load(`<style>p { color: red }</style>`, nil)
	assert.True(t, errors.Is(err, diagnostics.ErrParse))
}

func TestParseEngine(t *testing.T) {
	e, err := ParseEngine("douceur")
	require.NoError(t, err)
	assert.Equal(t, Douceur, e)
	e, err = ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, Native, e)
	_, err = ParseEngine("gecko")
	assert.Error(t, err)
}

func TestRoundTripDocument(t *testing.T) {
	doc, err := ParseHTML(`<!DOCTYPE html><div class="b a" id="x"><p>a</p><img src="i.png"/></div>`)
	require.NoError(t, err)
	again, err := ParseHTML(doc.String())
	require.NoError(t, err)
	assert.True(t, doc.Equal(again), doc.String())
}
