package dom

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webcore/maybe"
	"github.com/stretchr/testify/assert"
	tp "github.com/xlab/treeprint"
)

func TestElementQueries(t *testing.T) {
	n := NewElement("div", map[string]string{"class": "a b", "id": "x"})
	e, ok := n.Element()
	if !ok {
		t.Fatal("expected element node")
	}
	if id := e.ID().WithDefault(""); id != "x" {
		t.Errorf("expected id x, have %q", id)
	}
	classes := e.Classes()
	assert.Equal(t, []string{"a", "b"}, classes.Sorted())
	assert.True(t, e.HasClass("b"))
	assert.False(t, e.HasClass("c"))
	assert.Equal(t, []string{"class", "id"}, e.AttributeKeys())
}

func TestElementQueriesWithoutAttributes(t *testing.T) {
	e, _ := NewElement("p", nil).Element()
	assert.True(t, e.ID().IsNothing())
	assert.Empty(t, e.Classes())
	assert.False(t, e.HasClass("a"))
}

func TestClassesDropEmptyNames(t *testing.T) {
	e, _ := NewElement("p", map[string]string{"class": " a  b "}).Element()
	assert.Equal(t, []string{"a", "b"}, e.Classes().Sorted())
}

func TestNodeKinds(t *testing.T) {
	text := NewText("hello")
	s, ok := text.Text()
	assert.True(t, ok)
	assert.Equal(t, "hello", s)
	assert.Equal(t, "#text", text.NodeName())
	assert.Equal(t, "", text.TagName())
	_, ok = text.Element()
	assert.False(t, ok)
	em := NewElement("em", nil, NewText("x"))
	assert.Equal(t, "em", em.NodeName())
	assert.False(t, em.IsText())
}

func TestTextContentAndQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webcore.dom")
	defer teardown()
	//
	doc := sampleDocument()
	t.Logf("document =\n%s", printTree(doc))
	assert.Equal(t, "Hello world!", doc.Children[0].TextContent())
	ps := doc.ElementsByTagName("p")
	assert.Len(t, ps, 1)
	n, ok := doc.ElementByID("main")
	assert.True(t, ok)
	assert.Equal(t, "div", n.TagName())
	_, ok = doc.ElementByID("none")
	assert.False(t, ok)
}

func TestElementByIDEmpty(t *testing.T) {
	doc := &Document{Children: []*Node{
		NewElement("div", nil, NewElement("p", nil)),
	}}
	_, ok := doc.ElementByID("")
	assert.False(t, ok)
	doc.Children = append(doc.Children, NewElement("span", map[string]string{"id": ""}))
	n, ok := doc.ElementByID("")
	assert.True(t, ok)
	assert.Equal(t, "span", n.TagName())
}

func TestRenderSortsAttributes(t *testing.T) {
	n := NewElement("div", map[string]string{"z": "1", "a": "2", "m": `say "hi"`})
	var b strings.Builder
	if err := RenderNode(&b, n); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, `<div a="2" m='say "hi"' z="1"/>`, b.String())
}

func TestRenderDocument(t *testing.T) {
	doc := sampleDocument()
	doc.Doctype = &Doctype{
		Name:     "html",
		PublicID: maybe.Just("-//W3C//DTD XHTML 1.0 Strict//EN"),
		SystemID: maybe.Nothing[string](),
	}
	expected := `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN">` +
		`<div class="test" id="main"><p>Hello <em>world</em>!</p><br/></div>`
	assert.Equal(t, expected, doc.String())
}

func TestEqual(t *testing.T) {
	a, b := sampleDocument(), sampleDocument()
	assert.True(t, a.Equal(b))
	b.Children[0].Children[1] = NewElement("hr", nil)
	assert.False(t, a.Equal(b))
	c := sampleDocument()
	c.Doctype = NewDoctype("html")
	assert.False(t, a.Equal(c))
	assert.True(t, c.Equal(&Document{Doctype: &Doctype{Name: "html"}, Children: a.Children}))
	assert.False(t, Equal(NewText("a"), NewElement("a", nil)))
}

// --- Helpers ---------------------------------------------------------------

func sampleDocument() *Document {
	return &Document{
		Children: []*Node{
			NewElement("div", map[string]string{"id": "main", "class": "test"},
				NewElement("p", nil,
					NewText("Hello "),
					NewElement("em", nil, NewText("world")),
					NewText("!"),
				),
				NewElement("br", nil),
			),
		},
	}
}

func printTree(doc *Document) string {
	root := tp.New()
	for _, ch := range doc.Children {
		addToTree(root, ch)
	}
	return root.String()
}

func addToTree(branch tp.Tree, n *Node) {
	if t, ok := n.Text(); ok {
		branch.AddNode(fmt.Sprintf("%q", t))
		return
	}
	e, _ := n.Element()
	b := branch.AddBranch(fmt.Sprintf("<%s> %v", e.TagName, e.Attributes))
	for _, ch := range n.Children {
		addToTree(b, ch)
	}
}
