package cssom

import (
	"sort"

	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/dom/style"
	"github.com/npillmayer/webcore/dom/styledtree"
)

// MatchedRule is a rule matching an element, together with the specificity
// of the rule's most specific matching selector.
type MatchedRule struct {
	Specificity Specificity
	Rule        *Rule
}

// MatchingRules returns the rules of sheet which match e, ordered by
// ascending specificity. Rules of equal specificity are kept in source
// order.
func MatchingRules(e *dom.Element, sheet *StyleSheet) []MatchedRule {
	var matched []MatchedRule
	for _, r := range sheet.Rules() {
		if sp, ok := r.Match(e); ok {
			matched = append(matched, MatchedRule{Specificity: sp, Rule: r})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Specificity.Less(matched[j].Specificity)
	})
	return matched
}

// SpecifiedValues computes the properties for element e. Declarations of all
// matching rules are applied in cascade order; later declarations overwrite
// earlier ones.
func SpecifiedValues(e *dom.Element, sheet *StyleSheet) *style.PropertyMap {
	pmap := style.NewPropertyMap()
	for _, m := range MatchingRules(e, sheet) {
		for _, d := range m.Rule.Declarations {
			pmap.Set(d.Name, d.Value)
		}
	}
	return pmap
}

// Style creates a styled tree for the document tree rooted at root. The
// styled tree has the same shape as the document tree. Text nodes and
// elements not matched by any rule get an empty property map.
//
// A nil stylesheet is treated as an empty one.
func Style(root *dom.Node, sheet *StyleSheet) *styledtree.StyNode {
	if root == nil {
		return nil
	}
	tracer().Debugf("styling %s with %d rules", root.NodeName(), len(sheet.Rules()))
	return styleNode(root, sheet)
}

func styleNode(n *dom.Node, sheet *StyleSheet) *styledtree.StyNode {
	sn := styledtree.NewNodeForDOMNode(n)
	if e, ok := n.Element(); ok {
		sn.SetStyles(SpecifiedValues(e, sheet))
	}
	for _, ch := range n.Children {
		sn.AddStyledChild(styleNode(ch, sheet))
	}
	return sn
}

// StyleDocument styles every top-level node of doc. The result contains one
// styled tree per top-level node, in document order.
func StyleDocument(doc *dom.Document, sheet *StyleSheet) []*styledtree.StyNode {
	if doc == nil {
		return nil
	}
	styled := make([]*styledtree.StyNode, len(doc.Children))
	for i, n := range doc.Children {
		styled[i] = Style(n, sheet)
	}
	return styled
}
