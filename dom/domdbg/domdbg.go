/*
Package domdbg implements helpers to debug a styled DOM tree.

ToGraphViz writes a styled tree in GraphViz DOT format. Render it with

    dot -Tsvg -o tree.svg tree.dot

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/dom/style"
	"github.com/npillmayer/webcore/dom/styledtree"
)

// tracer traces with key 'webcore.domdbg'.
func tracer() tracing.Trace {
	return tracing.Select("webcore.domdbg")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname    string
	StyleGroups []string
}

var defaultGroups = []string{
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
}

var (
	headTmpl       = template.Must(template.New("dom").Parse(graphHeadTmpl))
	nodeTmpl       = template.Must(template.New("domnode").Funcs(template.FuncMap{"shortstring": shortText}).Parse(domNodeTmpl))
	edgeTmpl       = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	stylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	pgedgeTmpl     = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	pgpgTmpl       = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
)

// ToGraphViz outputs a diagram for a styled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree, a Writer, and an optional list of style property groups.
// The diagram will include all styles belonging to one of the
// property groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Margins
//     - Padding
//     - Border
//     - Display
//
func ToGraphViz(root *styledtree.StyNode, w io.Writer, styleGroups []string) error {
	gparams := graphParamsType{Fontname: "Helvetica", StyleGroups: styleGroups}
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	g := &graph{w: w, params: &gparams, dict: make(map[*styledtree.StyNode]string)}
	if err := headTmpl.Execute(w, gparams); err != nil {
		return err
	}
	if root != nil {
		g.nodes(root)
	}
	if g.err != nil {
		return g.err
	}
	tracer().Debugf("wrote %d nodes to DOT graph", len(g.dict))
	_, err := io.WriteString(w, "}\n")
	return err
}

type graph struct {
	w      io.Writer
	params *graphParamsType
	dict   map[*styledtree.StyNode]string
	err    error
}

func (g *graph) exec(tmpl *template.Template, data interface{}) {
	if g.err == nil {
		g.err = tmpl.Execute(g.w, data)
	}
}

type node struct {
	N    *dom.Node
	Name string
}

func (g *graph) nodes(sn *styledtree.StyNode) {
	g.domNode(sn)
	for _, ch := range sn.StyledChildren() {
		g.nodes(ch)
		g.exec(edgeTmpl, edge{g.node(sn), g.node(ch)})
	}
}

func (g *graph) node(sn *styledtree.StyNode) node {
	name := g.dict[sn]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(g.dict)+1)
		g.dict[sn] = name
	}
	return node{sn.DOMNode(), name}
}

func (g *graph) domNode(sn *styledtree.StyNode) {
	g.exec(nodeTmpl, g.node(sn))
	g.domStyles(sn)
}

// propertyGroup is a named subset of the properties of a node.
type propertyGroup struct {
	Name       string
	Properties []style.KeyValue
}

func (g *graph) domStyles(sn *styledtree.StyNode) {
	var prev *propertyGroup
	for _, name := range g.params.StyleGroups {
		props := sn.Styles().Group(name)
		if len(props) == 0 {
			continue
		}
		pg := &propertyGroup{Name: name, Properties: props}
		g.exec(stylegroupTmpl, pg)
		if prev == nil {
			g.exec(pgedgeTmpl, pgedge{g.node(sn).Name, pg})
		} else {
			g.exec(pgpgTmpl, []*propertyGroup{prev, pg})
		}
		prev = pg
	}
}

type edge struct {
	N1, N2 node
}

type pgedge struct {
	Name      string
	PropGroup *propertyGroup
}

func shortText(n *dom.Node) string {
	text, _ := n.Text()
	s := "\"\\\""
	if len(text) > 10 {
		s += text[:10] + "...\\\"\""
	} else {
		s += text + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "\u2423", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {                                                                                                             
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ printf "pg%p" . }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .Name }} -> {{ printf "pg%p" .PropGroup }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ index . 0 | printf "pg%p"  }} -> {{ index . 1 | printf "pg%p" }} [dir=none weight=1 style="dashed"] ;
`
