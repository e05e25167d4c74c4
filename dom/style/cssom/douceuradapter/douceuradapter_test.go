package douceuradapter

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webcore/diagnostics"
	"github.com/npillmayer/webcore/dom/markup"
	"github.com/npillmayer/webcore/dom/style"
	"github.com/npillmayer/webcore/dom/style/cssom"
	"github.com/npillmayer/webcore/dom/style/cssom/cssparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webcore.douceur")
	defer teardown()
	//
	sheet, err := Parse(`p, #x { color: #ff0000; margin-top: 4px; } .a { display: block; }`, nil)
	require.NoError(t, err)
	require.Len(t, sheet.Rules(), 2)
	r := sheet.Rules()[0]
	assert.Equal(t, "#x", r.Selectors[0].String())
	assert.Equal(t, "p", r.Selectors[1].String())
	assert.Equal(t, []cssom.Declaration{
		{Name: "color", Value: style.Color{R: 0xff, A: 0xff}},
		{Name: "margin-top", Value: style.Length{Amount: 4, Unit: style.Px}},
	}, r.Declarations)
}

func TestSameResultAsNativeParser(t *testing.T) {
	input := `h1.title { display: block; width: 50%; }
	#main { color: #0a0b0c; }
	em { font-style: italic; }`
	native, err := cssparser.Parse(input)
	require.NoError(t, err)
	douceur, err := Parse(input, nil)
	require.NoError(t, err)
	assert.True(t, native.Equal(douceur), "%s\n%s", native, douceur)
}

func TestUnsupportedConstructsAreDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webcore.douceur")
	defer teardown()
	//
	sink := diagnostics.NewSink()
	sheet, err := Parse(`p { color: red; }
	@media print { p { color: blue; } }
	div > p { color: green; }
	em { margin: 2px !important; width: calc(1px); }`, sink)
	require.NoError(t, err)
	require.Len(t, sheet.Rules(), 2)
	assert.Equal(t, "p { color: red; }", sheet.Rules()[0].String())
	assert.Equal(t, "em { margin: 2px; }", sheet.Rules()[1].String())
	assert.Len(t, sink.Warnings(), 4)
	assert.False(t, sink.HasErrors())
}

func TestExtractStyleElements(t *testing.T) {
	doc, err := markup.Parse(`<html><head><style>p { color: red; }</style></head>
	<body><style>em { color: blue; }</style></body></html>`)
	require.NoError(t, err)
	sheet, err := ExtractStyleElements(doc, nil)
	require.NoError(t, err)
	require.Len(t, sheet.Rules(), 2)
	assert.Equal(t, "em { color: blue; }", sheet.Rules()[1].String())
	empty, err := ExtractStyleElements(nil, nil)
	require.NoError(t, err)
	assert.True(t, empty.Empty())
	assert.True(t, Convert(nil, nil).Empty())
}
