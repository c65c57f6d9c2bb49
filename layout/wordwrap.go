package layout

import "strings"

// entityReplacer normalizes the handful of named/numeric entities the
// tokenizer passes through uninterpreted (spec.md §4.1 "entities are
// resolved at layout time, not tokenization time" per original_source).
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#39;", "'",
)

// splitWords normalizes entities and splits text into the atoms the
// word-wrap loop measures one at a time: runs of non-space characters,
// each carrying its trailing space (if any) so measured widths already
// include the inter-word gap.
func splitWords(text string) []string {
	text = entityReplacer.Replace(text)
	fields := strings.FieldsFunc(text, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' || r == '\r' })
	if len(fields) == 0 {
		return nil
	}
	words := make([]string, len(fields))
	for i, f := range fields {
		if i < len(fields)-1 {
			words[i] = f + " "
		} else {
			words[i] = f
		}
	}
	return words
}

// wrapCursor tracks the pen position and current inline row while words
// are measured and placed, per spec.md §4.9's word-wrap algorithm:
// "measured_line_width + (lx − inline_row_start) + word_width > max_width"
// triggers a wrap; the row's trailing line is always emitted even if it
// never overflowed.
type wrapCursor struct {
	rowStart   float64 // x at which the current inline row began
	maxWidth   float64
	penX, penY float64
	rowHeight  float64
	maxX       float64 // rightmost content edge reached, for shrink-to-fit sizing
	pending    bool // true once place() or advance() has laid out content not yet folded into penY
	hadContent bool // true once place() has ever placed a word on this cursor
}

func newWrapCursor(x, y, maxWidth float64) *wrapCursor {
	return &wrapCursor{rowStart: x, maxWidth: maxWidth, penX: x, penY: y, maxX: x}
}

// place advances the cursor past one measured word, wrapping to a new row
// first if it would overflow maxWidth. It returns the word's placed
// (x, y) origin.
func (w *wrapCursor) place(wordWidth, wordHeight float64) (x, y float64) {
	if w.penX > w.rowStart && w.penX-w.rowStart+wordWidth > w.maxWidth {
		w.newRow()
	}
	x, y = w.penX, w.penY
	w.penX += wordWidth
	if w.penX > w.maxX {
		w.maxX = w.penX
	}
	if wordHeight > w.rowHeight {
		w.rowHeight = wordHeight
	}
	w.pending = true
	w.hadContent = true
	return x, y
}

// advance moves the cursor past an already-laid-out horizontal-flow box
// (an inline-block or floated element), rather than a measured word: the
// caller has already computed the box's own geometry via a nested Reflow.
// It does not set hadContent — spec.md §4.9 step 9's 8-unit trailing pad
// is specific to wrapped text flows, not to sizing a container around
// inline-block/float children.
func (w *wrapCursor) advance(penX float64, boxHeight float64) {
	w.penX = penX
	if w.penX > w.maxX {
		w.maxX = w.penX
	}
	if boxHeight > w.rowHeight {
		w.rowHeight = boxHeight
	}
	w.pending = true
}

// newRow forces a line break at the cursor's current position, e.g. for a
// <br> element or an explicit wrap.
func (w *wrapCursor) newRow() {
	if w.rowHeight == 0 {
		w.rowHeight = lineHeight(16)
	}
	w.penY += w.rowHeight
	w.penX = w.rowStart
	w.rowHeight = 0
	w.pending = false
}

// flushPending closes out the current row only if place() or advance() has
// laid out content since the last newRow: a container that never placed any inline
// content (an empty element, or one whose only children are block-level)
// must not grow by a phantom blank line.
func (w *wrapCursor) flushPending() {
	if w.pending {
		w.newRow()
	}
}

// breakLine is newRow but with an explicit row height (used by <br>, which
// knows the current font size even on an otherwise-empty row).
func (w *wrapCursor) breakLine(minHeight float64) {
	if w.rowHeight < minHeight {
		w.rowHeight = minHeight
	}
	w.newRow()
}
