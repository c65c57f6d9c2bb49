package layout

import (
	"strings"

	"github.com/npillmayer/miniweb/dom"
	"github.com/npillmayer/miniweb/style"
)

// Context is the per-node reflow context (spec.md §3 ReflowContext):
// the containing block's content box, refreshed on each recursive
// descent, plus the bases ScalarResolver needs.
type Context struct {
	X, Y           float64 // this node's margin-box origin
	ContainerWidth float64 // containing block content width (percent_base)
	EmBase         float64 // parent's resolved font size
	RemBase        float64 // root element's resolved font size
	Measurer       TextMeasurer
}

// Reflow performs the single top-down recursive layout pass described in
// spec.md §4.9, populating ComputedBox/TextLines on n and its whole
// subtree. Callers normally invoke this once on the document root with a
// Context seeded from the viewport.
func Reflow(n *dom.Node, ctx Context) {
	if n.Kind != dom.Element {
		return
	}
	reflowElement(n, ctx)
}

func resolvedOr(sp style.ScalarProperty, def float64) float64 {
	if sp.HasValue {
		return sp.Resolved
	}
	return def
}

// isHorizontalFlow reports whether cs lays its box out on the current
// inline row rather than starting a new block row (spec.md §4.9 step 4):
// inline/inline-block/inline-flex display, or any non-none float.
func isHorizontalFlow(cs *style.Style) bool {
	switch cs.Display {
	case "inline", "inline-block", "inline-flex":
		return true
	}
	return cs.Float != "" && cs.Float != "none"
}

func reflowElement(n *dom.Node, ctx Context) {
	cs := n.ComputedStyle
	if cs == nil {
		n.ComputedBox = dom.Box{}
		return
	}
	style.ResolveBox(cs, style.EvalContext{PercentBase: ctx.ContainerWidth, EmBase: ctx.EmBase, RemBase: ctx.RemBase})

	if cs.Display == "none" {
		n.ComputedBox = dom.Box{}
		return
	}

	marginTop := resolvedOr(cs.Margin[style.SideTop], 0)
	marginRight := resolvedOr(cs.Margin[style.SideRight], 0)
	marginLeft := resolvedOr(cs.Margin[style.SideLeft], 0)
	paddingTop := resolvedOr(cs.Padding[style.SideTop], 0)
	paddingRight := resolvedOr(cs.Padding[style.SideRight], 0)
	paddingBottom := resolvedOr(cs.Padding[style.SideBottom], 0)
	paddingLeft := resolvedOr(cs.Padding[style.SideLeft], 0)

	box := &n.ComputedBox
	isPositioned := cs.Position == "absolute" || cs.Position == "fixed" || cs.Position == "sticky"
	switch {
	case isPositioned:
		// spec.md §9 Open Question (a): sticky treated like absolute/fixed,
		// taking inset.left/top directly with no scroll-anchored re-stick.
		box.X = resolvedOr(cs.Inset[style.SideLeft], ctx.X)
		box.Y = resolvedOr(cs.Inset[style.SideTop], ctx.Y)
	default:
		box.X = ctx.X + marginLeft
		box.Y = ctx.Y + marginTop
	}

	contentWidth := ctx.ContainerWidth - marginLeft - marginRight - paddingLeft - paddingRight
	if cs.Width.HasValue {
		contentWidth = cs.Width.Resolved
	}
	if contentWidth < 0 {
		contentWidth = 0
	}

	cursor := newWrapCursor(box.X+paddingLeft, box.Y+paddingTop, contentWidth)
	childEmBase := cs.FontSize.Resolved
	prevMarginBottom := 0.0

	for _, child := range n.Children() {
		switch child.Kind {
		case dom.Text:
			reflowText(child, cs, cursor, ctx.Measurer)
		case dom.Element:
			if strings.EqualFold(child.TagName, "BR") {
				cursor.breakLine(lineHeight(cs.FontSize.Resolved))
				child.ComputedBox = dom.Box{}
				prevMarginBottom = 0
				continue
			}
			chCS := child.ComputedStyle
			if chCS == nil {
				continue
			}
			style.ResolveBox(chCS, style.EvalContext{PercentBase: contentWidth, EmBase: childEmBase, RemBase: ctx.RemBase})
			if chCS.Display == "none" {
				child.ComputedBox = dom.Box{}
				continue
			}
			if isHorizontalFlow(chCS) {
				// inline, inline-block, inline-flex, and floated children all
				// continue the current row rather than starting a new block
				// row (spec.md §4.9 step 4: "inline-block/float places at
				// prev.x + prev.width + prev.margin.right").
				reflowInline(child, chCS, cursor, Context{
					X: cursor.penX, Y: cursor.penY, ContainerWidth: contentWidth,
					EmBase: childEmBase, RemBase: ctx.RemBase, Measurer: ctx.Measurer,
				})
				continue
			}
			// block-level child: close out any preceding inline row (only if
			// one is actually open) and collapse adjacent margins.
			cursor.flushPending()
			childMarginTop := resolvedOr(chCS.Margin[style.SideTop], 0)
			collapsed := childMarginTop
			if prevMarginBottom > collapsed {
				collapsed = prevMarginBottom
			}
			childCtx := Context{
				X:              cursor.rowStart,
				Y:              cursor.penY + (collapsed - childMarginTop),
				ContainerWidth: contentWidth,
				EmBase:         childEmBase,
				RemBase:        ctx.RemBase,
				Measurer:       ctx.Measurer,
			}
			reflowElement(child, childCtx)
			cursor.penY = child.ComputedBox.Y + child.ComputedBox.Height
			cursor.penX = cursor.rowStart
			prevMarginBottom = child.ComputedBox.AdjacentMarginBottom
		}
	}

	// thread the continuation cursor from the last in-flow child (spec.md
	// §3, §4.9 step 8, Glossary "Continuation cursor") before flushing the
	// row closes it out.
	box.ContinueX = cursor.penX
	box.ContinueY = cursor.penY

	cursor.flushPending()

	if isHorizontalFlow(cs) && !cs.Width.HasValue {
		// shrink-to-fit: an inline-level/floated box with no explicit width
		// sizes to its content's rightmost extent, not the full containing
		// block (spec.md §8 scenario 3).
		contentWidth = cursor.maxX - (box.X + paddingLeft)
		if contentWidth < 0 {
			contentWidth = 0
		}
	}

	contentHeight := cursor.penY - (box.Y + paddingTop)
	if cursor.hadContent {
		contentHeight += trailingPad
	}
	if cs.Height.HasValue {
		contentHeight = cs.Height.Resolved
	}
	if contentHeight < 0 {
		contentHeight = 0
	}

	box.Width = contentWidth + paddingLeft + paddingRight
	box.Height = contentHeight + paddingTop + paddingBottom

	ownMarginBottom := resolvedOr(cs.Margin[style.SideBottom], 0)
	box.AdjacentMarginBottom = ownMarginBottom
	if paddingBottom == 0 && prevMarginBottom > ownMarginBottom {
		box.AdjacentMarginBottom = prevMarginBottom
	}
}

// reflowText wraps one text node's words across the parent's inline flow,
// per spec.md §4.9's word-wrap algorithm.
func reflowText(n *dom.Node, parentStyle *style.Style, cursor *wrapCursor, measurer TextMeasurer) {
	words := splitWords(n.Value)
	lines := make([]dom.TextLine, 0, len(words))
	for _, w := range words {
		ww, wh := measurer.Measure(w, parentStyle.FontSize.Resolved, parentStyle.FontFamily)
		x, y := cursor.place(ww, wh)
		lines = append(lines, dom.TextLine{Text: w, X: x, Y: y, Width: ww, Height: wh})
	}
	n.TextLines = lines
	// spec.md §3/§4.9 step 8: continue_x/continue_y are the cursor a
	// following sibling resumes an inline run from.
	n.ComputedBox.ContinueX = cursor.penX
	n.ComputedBox.ContinueY = cursor.penY
}

// reflowInline lays out an inline-level element (e.g. <span>, <a>, <code>)
// in the current text flow rather than starting a new block row.
func reflowInline(n *dom.Node, cs *style.Style, cursor *wrapCursor, ctx Context) {
	reflowElement(n, ctx)
	marginRight := resolvedOr(cs.Margin[style.SideRight], 0)
	cursor.advance(n.ComputedBox.X+n.ComputedBox.Width+marginRight, n.ComputedBox.Height)
}
