// Package render turns a laid-out dom.Node tree into a flat paint list
// (spec.md §4.10) and hit-tests pointer coordinates against it (§4.11).
package render

import (
	"github.com/npillmayer/miniweb/dom"
	"github.com/npillmayer/miniweb/style"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("miniweb.render")
}

// Rect is an axis-aligned viewport rectangle used to clip the render
// array (spec.md §4.10 "viewport AABB clipping").
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) intersects(b dom.Box) bool {
	return b.X < r.X+r.Width && b.X+b.Width > r.X &&
		b.Y < r.Y+r.Height && b.Y+b.Height > r.Y
}

// RenderItem is one paint primitive: either a box (background/border of an
// element) or a line of text.
type RenderItem struct {
	Node *dom.Node
	Box  dom.Box
	Text string // non-empty for a text-line item
}

// BuildRenderArray walks n's subtree in document order and returns the
// flat paint list a painter's-algorithm renderer draws back-to-front:
// parents precede their children, so later items naturally paint over
// earlier ones. Comments, display:none, and visibility:hidden subtrees
// are skipped, as are boxes fully outside viewport.
func BuildRenderArray(n *dom.Node, viewport Rect) []RenderItem {
	var out []RenderItem
	buildRec(n, viewport, &out)
	return out
}

func buildRec(n *dom.Node, viewport Rect, out *[]RenderItem) {
	switch n.Kind {
	case dom.Comment, dom.DocumentType:
		return
	case dom.Text:
		for _, line := range n.TextLines {
			box := dom.Box{X: line.X, Y: line.Y, Width: line.Width, Height: line.Height}
			if viewport.intersects(box) {
				*out = append(*out, RenderItem{Node: n, Box: box, Text: line.Text})
			}
		}
		return
	case dom.Element:
		cs := n.ComputedStyle
		if cs == nil || cs.Display == "none" || cs.Visibility == "hidden" {
			return
		}
		if !viewport.intersects(n.ComputedBox) {
			// still must walk children: a too-tall container can clip its
			// own box out of view while a child remains visible is not
			// possible for in-flow layout, but positioned children can
			// escape the parent's box, so don't prune the subtree here —
			// only skip emitting this element's own box item.
		} else if hasPaintableBackground(cs) {
			*out = append(*out, RenderItem{Node: n, Box: n.ComputedBox})
		}
		for _, ch := range n.Children() {
			buildRec(ch, viewport, out)
		}
	}
}

func hasPaintableBackground(cs *style.Style) bool {
	return cs.BackgroundColor != "" && cs.BackgroundColor != "transparent"
}
