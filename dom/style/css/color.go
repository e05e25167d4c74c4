package css

import (
	"image/color"
	"strings"

	"github.com/npillmayer/webcore/dom/style"
	"github.com/npillmayer/webcore/dom/styledtree"
	"golang.org/x/image/colornames"
)

// ColorFromValue interprets a property value as a color. Hex colors are
// returned as they are, keywords are looked up in the table of CSS color
// names. "transparent" is transparent black. Other values result in nil.
func ColorFromValue(v style.Value) color.Color {
	switch c := v.(type) {
	case style.Color:
		return c
	case style.Keyword:
		name := strings.ToLower(string(c))
		if name == "transparent" {
			return style.Color{}
		}
		if rgba, ok := colornames.Map[name]; ok {
			return style.Color{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
		}
	}
	return nil
}

// ColorOf returns property key of a styled node as a color, or nil if the
// property is not set or is not a color.
func ColorOf(sn *styledtree.StyNode, key string) color.Color {
	v, ok := sn.Value(key)
	if !ok {
		return nil
	}
	c := ColorFromValue(v)
	if c == nil {
		tracer().Debugf("property %s = %s is not a color", key, v)
	}
	return c
}
