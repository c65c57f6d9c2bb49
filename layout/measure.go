// Package layout implements Reflow (spec.md §4.9): a single-pass,
// top-down recursive layout walk over a styled dom.Node tree, producing
// the ComputedBox geometry and wrapped TextLines that render.
// BuildRenderArray and HitTest later consume.
package layout

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("miniweb.layout")
}

// TextMeasurer is the external collaborator spec.md §6 names: Reflow asks
// it for a run of text's rendered width/height under a given font, rather
// than owning any font metrics itself.
type TextMeasurer interface {
	Measure(text string, fontSize float64, fontFamily string) (width, height float64)
}

// trailingPad is spec.md §4.9 step 9's "8 units of trailing padding",
// added once after a text flow's wrapped lines.
const trailingPad = 8.0

// lineHeight is spec.md §9 Open Question (b): hardcoded to font_size + 8,
// used whenever a row has no measured content (e.g. an empty line forced
// by a <br>).
func lineHeight(fontSize float64) float64 { return fontSize + trailingPad }
