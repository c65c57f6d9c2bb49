// Package controller drives the pipeline end to end (spec.md §4.12):
// parse → cascade/inherit → reflow on load, a full reflow on resize, a
// scroll-offset update on scroll, and hit-testing on mouse-move.
package controller

import (
	"fmt"

	"github.com/npillmayer/miniweb/css"
	"github.com/npillmayer/miniweb/dom"
	"github.com/npillmayer/miniweb/htmlparse"
	"github.com/npillmayer/miniweb/layout"
	"github.com/npillmayer/miniweb/render"
	"github.com/npillmayer/schuko/tracing"
	"github.com/xlab/treeprint"
)

func tracer() tracing.Trace {
	return tracing.Select("miniweb.controller")
}

// Controller holds one loaded document's state: its DOM, stylesheet, and
// current viewport/scroll position.
type Controller struct {
	Root     *dom.Node
	Rules    []css.StyleRule
	Width    float64
	Height   float64
	ScrollY  float64
	Measurer layout.TextMeasurer

	lastErr error // spec.md §7: a single surfaced diagnostic, not a log stream
}

// New creates a Controller. measurer may be nil until a real TextMeasurer
// (e.g. internal/raster.Measurer) is wired in by the caller.
func New(measurer layout.TextMeasurer) *Controller {
	return &Controller{Width: 800, Height: 600, Measurer: measurer}
}

// Load parses htmlSrc and cssSrc (concatenated after the built-in
// user-agent defaults), runs cascade/inheritance, and reflows at the
// controller's current viewport size. It is the "load" intent of spec.md
// §4.12.
func (c *Controller) Load(htmlSrc, cssSrc string) error {
	c.lastErr = nil
	if htmlSrc == "" {
		c.lastErr = fmt.Errorf("controller: empty document")
		tracer().Errorf("%s", c.lastErr)
		return c.lastErr
	}
	c.Root = htmlparse.Parse(htmlSrc)

	var rules []css.StyleRule
	rules = append(rules, css.NewScanner(DefaultStylesheet).ScanRules()...)
	if cssSrc != "" {
		rules = append(rules, css.NewScanner(cssSrc).ScanRules()...)
	}
	// re-number origin indices so the page stylesheet's rules sort after
	// the user-agent defaults regardless of each scanner's own origin
	// counter (spec.md §4.6: "user-agent defaults, then page styles").
	for i := range rules {
		rules[i].OriginIndex = i
	}
	c.Rules = rules

	dom.ApplyStyles(c.Root, c.Rules)
	c.reflow()
	return nil
}

// Resize updates the viewport and reflows.
func (c *Controller) Resize(width, height float64) {
	c.Width, c.Height = width, height
	c.reflow()
}

// Scroll adjusts the vertical scroll offset, clamped to non-negative.
func (c *Controller) Scroll(deltaY float64) {
	c.ScrollY += deltaY
	if c.ScrollY < 0 {
		c.ScrollY = 0
	}
}

// MouseMove hit-tests (x, y) against the current render array, updating
// hover state and returning the hit element, or nil.
func (c *Controller) MouseMove(x, y float64) *dom.Node {
	if c.Root == nil {
		return nil
	}
	render.ClearHover(c.Root)
	arr := c.renderArray()
	return render.HitTest(arr, x, y, c.ScrollY)
}

// LastError returns the single diagnostic from the most recent Load, or
// nil.
func (c *Controller) LastError() error { return c.lastErr }

func (c *Controller) reflow() {
	if c.Root == nil || c.Measurer == nil {
		return
	}
	layout.Reflow(c.Root, layout.Context{
		X: 0, Y: 0,
		ContainerWidth: c.Width,
		EmBase:         16,
		RemBase:        16,
		Measurer:       c.Measurer,
	})
}

// RenderArray returns the flat paint list for the current viewport/scroll
// position (spec.md §4.10), for callers that rasterize or otherwise
// consume the render array directly.
func (c *Controller) RenderArray() []render.RenderItem {
	return c.renderArray()
}

func (c *Controller) renderArray() []render.RenderItem {
	viewport := render.Rect{X: 0, Y: c.ScrollY, Width: c.Width, Height: c.Height}
	return render.BuildRenderArray(c.Root, viewport)
}

// Dump renders the DOM tree as an indented text diagram, for debugging.
func (c *Controller) Dump() string {
	if c.Root == nil {
		return ""
	}
	t := treeprint.New()
	dumpNode(c.Root, t)
	return t.String()
}

func dumpNode(n *dom.Node, t treeprint.Tree) {
	label := nodeLabel(n)
	branch := t
	if label != "" {
		branch = t.AddBranch(label)
	}
	for _, ch := range n.Children() {
		dumpNode(ch, branch)
	}
}

func nodeLabel(n *dom.Node) string {
	switch n.Kind {
	case dom.Element:
		return fmt.Sprintf("<%s> %.0fx%.0f @(%.0f,%.0f)", n.TagName,
			n.ComputedBox.Width, n.ComputedBox.Height, n.ComputedBox.X, n.ComputedBox.Y)
	case dom.Text:
		return fmt.Sprintf("#text %q", n.Value)
	case dom.Comment:
		return fmt.Sprintf("#comment %q", n.Value)
	default:
		return ""
	}
}
