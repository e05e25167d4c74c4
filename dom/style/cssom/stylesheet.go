package cssom

import (
	"sort"
	"strings"

	"github.com/npillmayer/webcore/dom"
	"github.com/npillmayer/webcore/dom/style"
)

// StyleSheet is an ordered list of rules. Rules later in the list win over
// earlier rules of equal specificity.
//
// Stylesheets are built by parsers and are not modified afterwards, except by
// appending the rules of other stylesheets in a setup phase.
type StyleSheet struct {
	rules []*Rule
}

// NewStyleSheet creates a stylesheet from rules, keeping their order.
func NewStyleSheet(rules ...*Rule) *StyleSheet {
	return &StyleSheet{rules: rules}
}

// Rules returns all the rules of a stylesheet in source order.
func (sheet *StyleSheet) Rules() []*Rule {
	if sheet == nil {
		return nil
	}
	return sheet.rules
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return len(sheet.Rules()) == 0
}

// AppendRules appends the rules of another stylesheet. They will take
// precedence over the rules of sheet with equal specificity.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	sheet.rules = append(sheet.rules, other.Rules()...)
}

// Equal compares two stylesheets rule by rule.
func (sheet *StyleSheet) Equal(other *StyleSheet) bool {
	r1, r2 := sheet.Rules(), other.Rules()
	if len(r1) != len(r2) {
		return false
	}
	for i, r := range r1 {
		if !r.Equal(r2[i]) {
			return false
		}
	}
	return true
}

// String serializes a stylesheet in CSS syntax, one rule per line. Parsing
// the output yields an equal stylesheet.
func (sheet *StyleSheet) String() string {
	var b strings.Builder
	for _, r := range sheet.Rules() {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// --- Rules -----------------------------------------------------------------

// Rule is a list of selectors together with a block of declarations.
type Rule struct {
	Selectors    []Selector    // ordered by descending specificity
	Declarations []Declaration // source order
}

// NewRule creates a rule. Selectors are sorted by descending specificity;
// selectors of equal specificity keep their order.
func NewRule(selectors []Selector, declarations []Declaration) *Rule {
	sorted := make([]Selector, len(selectors))
	copy(sorted, selectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Specificity().Less(sorted[i].Specificity())
	})
	return &Rule{Selectors: sorted, Declarations: declarations}
}

// Match checks the selectors of r against e. If any selector matches, the
// specificity of the first (i.e., most specific) matching selector is
// returned.
func (r *Rule) Match(e *dom.Element) (Specificity, bool) {
	for _, sel := range r.Selectors {
		if sel.Matches(e) {
			return sel.Specificity(), true
		}
	}
	return Specificity{}, false
}

// Equal compares selectors and declarations of two rules.
func (r *Rule) Equal(other *Rule) bool {
	if len(r.Selectors) != len(other.Selectors) || len(r.Declarations) != len(other.Declarations) {
		return false
	}
	for i, sel := range r.Selectors {
		if !SelectorsEqual(sel, other.Selectors[i]) {
			return false
		}
	}
	for i, d := range r.Declarations {
		if d != other.Declarations[i] {
			return false
		}
	}
	return true
}

func (r *Rule) String() string {
	var b strings.Builder
	for i, sel := range r.Selectors {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sel.String())
	}
	b.WriteString(" {")
	for _, d := range r.Declarations {
		b.WriteString(" ")
		b.WriteString(d.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Declaration is a single property setting, e.g. "margin-top: 4px".
type Declaration struct {
	Name  string
	Value style.Value
}

func (d Declaration) String() string {
	return d.Name + ": " + d.Value.String() + ";"
}
