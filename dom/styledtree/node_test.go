package styledtree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/dom/style"
	"github.com/stretchr/testify/assert"
)

func TestStyledNodeLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webcore.styledtree")
	defer teardown()
	//
	p := dom.NewElement("p", nil, dom.NewText("hello"))
	root := NewNodeForDOMNode(p)
	text := NewNodeForDOMNode(p.Children[0])
	root.AddStyledChild(text)
	assert.Same(t, p, root.DOMNode())
	assert.Equal(t, 1, root.ChildCount())
	assert.Same(t, text, root.StyledChildren()[0])
	assert.Same(t, root, text.ParentNode())
	assert.Nil(t, root.ParentNode())
	root.Debug()
}

func TestStyledNodeLookup(t *testing.T) {
	sn := NewNodeForDOMNode(dom.NewElement("div", nil))
	assert.Equal(t, 0, sn.Styles().Size())
	assert.Equal(t, style.Keyword("inline"), sn.Lookup("display", "display", style.Keyword("inline")))
	pmap := style.NewPropertyMap()
	pmap.Set("display", style.Keyword("block"))
	sn.SetStyles(pmap)
	assert.Equal(t, style.Keyword("block"), sn.Lookup("display", "display", style.Keyword("inline")))
	v, ok := sn.Value("display")
	assert.True(t, ok)
	assert.Equal(t, style.Keyword("block"), v)
	sn.SetStyles(nil)
	assert.NotNil(t, sn.Styles())
}

func TestStyledNodeWalk(t *testing.T) {
	root := NewNodeForDOMNode(dom.NewElement("div", nil))
	a := NewNodeForDOMNode(dom.NewElement("a", nil))
	b := NewNodeForDOMNode(dom.NewElement("b", nil))
	root.AddStyledChild(a.AddStyledChild(b))
	var names []string
	var depths []int
	root.Walk(func(sn *StyNode, depth int) bool {
		names = append(names, sn.DOMNode().NodeName())
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"div", "a", "b"}, names)
	assert.Equal(t, []int{0, 1, 2}, depths)
	assert.Equal(t, "b {}", b.String())
}
