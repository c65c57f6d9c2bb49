// Package style implements the cascade, inheritance, and scalar
// resolution passes (spec.md §4.6–§4.8) plus the Style data record
// (spec.md §3). It depends only on css (for Value/Selector/StyleRule) and
// never on dom, so dom can depend on style without an import cycle; tree
// traversal/orchestration of the passes lives in the dom package, which
// owns the concrete tree.
package style

import (
	"strconv"
	"strings"

	"github.com/npillmayer/miniweb/css"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("miniweb.style")
}

// ElementAccessor re-exports css.ElementAccessor for callers that only
// import style.
type ElementAccessor = css.ElementAccessor

// Declaration is a merged, cascade-resolved declaration value.
type Declaration struct {
	Value     css.Value
	Important bool
}

// Declarations is a per-element map of merged declarations (spec.md §3
// "specified_style"/"inherited_style" content), keyed by property name.
type Declarations map[string]Declaration

// ScalarProperty holds a raw CSS value together with its resolved numeric
// value, once ScalarResolver has run (spec.md §3 ComputedBox note:
// "both its raw CssValue and, after resolution, a concrete value plus a
// flag 'has numeric value'").
type ScalarProperty struct {
	Raw      css.Value
	Resolved float64
	HasValue bool
}

// Sides indexes the four box-edge ScalarProperties in top/right/bottom/left
// order, matching CSS shorthand order.
type Sides [4]ScalarProperty

const (
	SideTop = iota
	SideRight
	SideBottom
	SideLeft
)

// Style is the fully-typed property record described in spec.md §3.
type Style struct {
	Margin Sides
	Padding Sides
	Inset   Sides

	FontFamily string
	FontWeight string
	FontStyle  string
	FontSize   ScalarProperty

	Display         string
	Float           string
	Position        string
	TextDecoration  string
	WhiteSpace      string
	Visibility      string
	Color           string
	BackgroundColor string

	Width  ScalarProperty
	Height ScalarProperty
}

// inheritableKeys lists the properties spec.md §4.7 names as inheritable.
var inheritableKeys = map[string]bool{
	"color": true, "font-family": true, "font-weight": true,
	"font-style": true, "font-size": true, "text-decoration": true,
	"white-space": true,
}

// IsInheritable reports whether a property key is declared inheritable
// per spec.md §4.7.
func IsInheritable(key string) bool { return inheritableKeys[key] }

// Default returns the default Declarations for a newly-created, unstyled
// element: static defaults for non-inherited properties, matching the
// teacher's style.InitializeDefaultPropertyValues, but value-typed.
func Default() Declarations {
	d := Declarations{}
	set := func(k, v string) { d[k] = Declaration{Value: css.Value{Kind: css.VString, Str: v}} }
	setSize := func(k string, n float64) { d[k] = Declaration{Value: css.Value{Kind: css.VSize, Number: n, Unit: css.Px}} }

	set("display", "block")
	set("float", "none")
	set("position", "static")
	set("visibility", "visible")
	set("text-decoration", "none")
	set("white-space", "normal")
	set("color", "black")
	set("background-color", "transparent")
	set("font-family", "sans-serif")
	set("font-weight", "normal")
	set("font-style", "normal")
	setSize("font-size", 16)
	set("width", "auto")
	set("height", "auto")
	for _, k := range []string{"margin-top", "margin-right", "margin-bottom", "margin-left",
		"padding-top", "padding-right", "padding-bottom", "padding-left",
		"top", "right", "bottom", "left"} {
		setSize(k, 0)
	}
	return d
}

// ToStyle finalizes a Declarations map into a concrete Style record,
// resolving `var(...)` references against vars (spec.md §9 Open
// Question (c): variable resolution deferred to computed-value time).
func ToStyle(decls Declarations, vars map[string]css.Value) *Style {
	resolve := func(key string) css.Value {
		d, ok := decls[key]
		if !ok {
			return css.Invalid
		}
		return resolveVars(d.Value, vars)
	}
	strOf := func(key, def string) string {
		v := resolve(key)
		if v.Kind == css.VString && v.Str != "" {
			return strings.ToLower(v.Str)
		}
		return def
	}
	scalarOf := func(key string) ScalarProperty {
		return ScalarProperty{Raw: resolve(key)}
	}

	s := &Style{
		Display:         strOf("display", "block"),
		Float:           strOf("float", "none"),
		Position:        strOf("position", "static"),
		Visibility:      strOf("visibility", "visible"),
		TextDecoration:  strOf("text-decoration", "none"),
		WhiteSpace:      strOf("white-space", "normal"),
		Color:           strOf("color", "black"),
		BackgroundColor: strOf("background-color", "transparent"),
		FontFamily:      strOf("font-family", "sans-serif"),
		FontWeight:      strOf("font-weight", "normal"),
		FontStyle:       strOf("font-style", "normal"),
		FontSize:        scalarOf("font-size"),
		Width:           scalarOf("width"),
		Height:          scalarOf("height"),
	}
	s.Margin = Sides{scalarOf("margin-top"), scalarOf("margin-right"), scalarOf("margin-bottom"), scalarOf("margin-left")}
	s.Padding = Sides{scalarOf("padding-top"), scalarOf("padding-right"), scalarOf("padding-bottom"), scalarOf("padding-left")}
	s.Inset = Sides{scalarOf("top"), scalarOf("right"), scalarOf("bottom"), scalarOf("left")}
	if !s.FontSize.Raw.IsSet() {
		s.FontSize.Raw = css.Value{Kind: css.VSize, Number: 16, Unit: css.Px}
	}
	return s
}

func resolveVars(v css.Value, vars map[string]css.Value) css.Value {
	if v.Kind == css.VFunction && strings.EqualFold(v.FuncName, "var") && len(v.Args) > 0 {
		name := v.Args[0].Str
		if resolved, ok := vars[name]; ok {
			return resolveVars(resolved, vars)
		}
		if len(v.Args) > 1 {
			return resolveVars(v.Args[1], vars)
		}
		return css.Invalid
	}
	return v
}

// parseNumberLiteral parses a unitless number literal such as "3",
// reporting whether s was a valid number.
func parseNumberLiteral(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	return n, err == nil
}
