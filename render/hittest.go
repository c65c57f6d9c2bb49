package render

import "github.com/npillmayer/miniweb/dom"

// HitTest reverse-iterates arr (topmost-painted first) and returns the
// first non-text element whose box contains (x, y+scrollY), per spec.md
// §4.11. It also marks that element's ComputedBox.HoverRect so a
// subsequent render pass can draw a hover outline.
func HitTest(arr []RenderItem, x, y, scrollY float64) *dom.Node {
	y += scrollY
	for i := len(arr) - 1; i >= 0; i-- {
		item := arr[i]
		if item.Node.Kind != dom.Element {
			continue
		}
		b := item.Box
		if x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height {
			item.Node.ComputedBox.HoverRect = true
			return item.Node
		}
	}
	return nil
}

// ClearHover clears HoverRect across a whole tree, called before each new
// HitTest so a stale hover state doesn't linger on an element the pointer
// has since left.
func ClearHover(n *dom.Node) {
	if n.Kind == dom.Element {
		n.ComputedBox.HoverRect = false
	}
	for _, ch := range n.Children() {
		ClearHover(ch)
	}
}
