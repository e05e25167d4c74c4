package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'webcore.style'
func tracer() tracing.Trace {
	return tracing.Select("webcore.style")
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Value
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds the CSS properties of a styled node. nil is a legal
// (empty) property map.
//
// Writing a property overwrites a previous value for the same key; the
// cascade relies on this last-write-wins behaviour.
type PropertyMap struct {
	m map[string]Value // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

// Size returns the number of properties.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Set sets a property's value. Overwrites an existing value, if present.
func (pmap *PropertyMap) Set(key string, value Value) {
	if pmap.m == nil {
		pmap.m = make(map[string]Value)
	}
	pmap.m[key] = value
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Value, bool) {
	if pmap == nil {
		return nil, false
	}
	v, ok := pmap.m[key]
	return v, ok
}

// Lookup returns the value for key, if set. Otherwise it returns the value
// for fallback, if set, and def as a last resort. Example:
//
//     display := pmap.Lookup("display", "display", style.Keyword("inline"))
//
func (pmap *PropertyMap) Lookup(key, fallback string, def Value) Value {
	if v, ok := pmap.Property(key); ok {
		return v
	}
	if v, ok := pmap.Property(fallback); ok {
		return v
	}
	return def
}

// Keys returns all property keys in lexicographic order.
func (pmap *PropertyMap) Keys() []string {
	if pmap == nil {
		return nil
	}
	keys := make([]string, 0, len(pmap.m))
	for k := range pmap.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties, ordered by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	keys := pmap.Keys()
	r := make([]KeyValue, len(keys))
	for i, k := range keys {
		r[i] = KeyValue{k, pmap.m[k]}
	}
	return r
}

// Group returns the properties belonging to a property group, ordered
// by key. See GroupNameFromPropertyKey.
func (pmap *PropertyMap) Group(groupname string) []KeyValue {
	var r []KeyValue
	for _, kv := range pmap.Properties() {
		if GroupNameFromPropertyKey(kv.Key) == groupname {
			r = append(r, kv)
		}
	}
	return r
}

// Equal compares two property maps.
func (pmap *PropertyMap) Equal(other *PropertyMap) bool {
	if pmap.Size() != other.Size() {
		return false
	}
	for _, kv := range pmap.Properties() {
		if w, ok := other.Property(kv.Key); !ok || w != kv.Value {
			return false
		}
	}
	return true
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, kv := range pmap.Properties() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.String())
	}
	b.WriteString("}")
	return b.String()
}

// --- CSS Property Groups ----------------------------------------------

// CSS knows a whole lot of properties. For presentation purposes (debugging
// output), we split them up into organisatorial groups.

// Symbolic names for string literals, denoting property groups.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if groupname, found := groupNameFromPropertyKey[key]; found {
		return groupname
	}
	switch {
	case strings.HasPrefix(key, "margin"):
		return PGMargins
	case strings.HasPrefix(key, "padding"):
		return PGPadding
	case strings.HasPrefix(key, "border"):
		return PGBorder
	case strings.HasPrefix(key, "font"), strings.HasPrefix(key, "text"):
		return PGText
	}
	return PGX
}

var groupNameFromPropertyKey = map[string]string{
	"width":            PGDimension,
	"height":           PGDimension,
	"min-width":        PGDimension,
	"min-height":       PGDimension,
	"max-width":        PGDimension,
	"max-height":       PGDimension,
	"display":          PGDisplay,
	"float":            PGDisplay,
	"visibility":       PGDisplay,
	"position":         PGDisplay,
	"color":            PGColor,
	"background":       PGColor,
	"background-color": PGColor,
	"direction":        PGText,
	"white-space":      PGText,
	"word-spacing":     PGText,
	"letter-spacing":   PGText,
	"line-height":      PGText,
}

// AllGroups lists the names of all property groups.
var AllGroups = []string{
	PGMargins, PGPadding, PGBorder, PGDimension, PGDisplay, PGColor, PGText, PGX,
}

// Debug dumps a property map to the tracer.
func (pmap *PropertyMap) Debug(label string) {
	tracer().Debugf("%s: %s", label, fmt.Sprint(pmap))
}
