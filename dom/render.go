package dom

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/webcore/maybe"
)

// Render writes a document in markup form.
//
// The output is accepted by the markup parser and re-parses to an equal
// document: attributes are written in lexicographic key order, elements
// without children are written self-closing, and text is written verbatim
// (the parser does not decode entities, hence the serializer does not escape
// them). Attribute values are quoted with '"', or with '\'' if the value
// contains a '"'.
func Render(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	if doc.Doctype != nil {
		renderDoctype(bw, doc.Doctype)
	}
	for _, ch := range doc.Children {
		renderNode(bw, ch)
	}
	return bw.Flush()
}

// RenderNode writes a node and its descendents in markup form.
func RenderNode(w io.Writer, n *Node) error {
	bw := bufio.NewWriter(w)
	renderNode(bw, n)
	return bw.Flush()
}

// String returns the markup form of a document.
func (doc *Document) String() string {
	var b strings.Builder
	_ = Render(&b, doc)
	return b.String()
}

func renderDoctype(w *bufio.Writer, dt *Doctype) {
	w.WriteString("<!DOCTYPE ")
	w.WriteString(dt.Name)
	if id, ok := maybe.Unpack(dt.PublicID); ok {
		w.WriteString(` PUBLIC "`)
		w.WriteString(id)
		w.WriteByte('"')
	}
	if id, ok := maybe.Unpack(dt.SystemID); ok {
		w.WriteString(` SYSTEM "`)
		w.WriteString(id)
		w.WriteByte('"')
	}
	w.WriteByte('>')
}

func renderNode(w *bufio.Writer, n *Node) {
	switch p := n.Payload.(type) {
	case Text:
		w.WriteString(string(p))
	case *Element:
		w.WriteByte('<')
		w.WriteString(p.TagName)
		for _, k := range p.AttributeKeys() {
			v := p.Attributes[k]
			quote := byte('"')
			if strings.IndexByte(v, '"') >= 0 {
				quote = '\''
			}
			w.WriteByte(' ')
			w.WriteString(k)
			w.WriteByte('=')
			w.WriteByte(quote)
			w.WriteString(v)
			w.WriteByte(quote)
		}
		if len(n.Children) == 0 {
			w.WriteString("/>")
			return
		}
		w.WriteByte('>')
		for _, ch := range n.Children {
			renderNode(w, ch)
		}
		w.WriteString("</")
		w.WriteString(p.TagName)
		w.WriteByte('>')
	default:
		tracer().Errorf("render: node with unknown payload %T", n.Payload)
	}
}
