package layout

import (
	"testing"

	"github.com/npillmayer/miniweb/css"
	"github.com/npillmayer/miniweb/dom"
	"github.com/npillmayer/miniweb/htmlparse"
	"github.com/stretchr/testify/assert"
)

// fixedMeasurer treats every word as a fixed-size box, so geometry assertions
// don't depend on any real font metrics.
type fixedMeasurer struct{ w, h float64 }

func (m fixedMeasurer) Measure(text string, fontSize float64, fontFamily string) (float64, float64) {
	return float64(len(text)) * m.w, m.h
}

func loadAndReflow(t *testing.T, htmlSrc, cssSrc string, width float64) *dom.Node {
	t.Helper()
	root := htmlparse.Parse(htmlSrc)
	rules := css.NewScanner(cssSrc).ScanRules()
	dom.ApplyStyles(root, rules)
	Reflow(root, Context{X: 0, Y: 0, ContainerWidth: width, EmBase: 16, RemBase: 16, Measurer: fixedMeasurer{w: 5, h: 12}})
	return root
}

func firstElement(n *dom.Node, tag string) *dom.Node {
	for _, ch := range n.Children() {
		if ch.Kind == dom.Element {
			if ch.TagName == tag {
				return ch
			}
			if found := firstElement(ch, tag); found != nil {
				return found
			}
		}
	}
	return nil
}

func TestReflowEmptyDivHasZeroHeightBox(t *testing.T) {
	root := loadAndReflow(t, `<div></div>`, ``, 300)
	div := firstElement(root, "DIV")
	assert.Equal(t, 0.0, div.ComputedBox.Height)
	assert.Equal(t, 300.0, div.ComputedBox.Width)
}

func TestReflowDisplayNoneSkipsBox(t *testing.T) {
	root := loadAndReflow(t, `<div class="hidden">text</div>`, `.hidden { display: none; }`, 300)
	div := firstElement(root, "DIV")
	assert.Equal(t, dom.Box{}, div.ComputedBox)
}

func TestReflowWrapsTextAcrossMultipleLines(t *testing.T) {
	root := loadAndReflow(t, `<div>one two three four five six seven eight</div>`, ``, 40)
	div := firstElement(root, "DIV")
	text := div.Children()[0]
	assert.True(t, len(text.TextLines) > 1)
	for _, l := range text.TextLines {
		assert.True(t, l.X < 40)
	}
}

func TestReflowMarginCollapseBetweenSiblings(t *testing.T) {
	root := loadAndReflow(t, `<div><p>a</p><p>b</p></div>`,
		`p { margin-top: 10px; margin-bottom: 20px; }`, 300)
	div := firstElement(root, "DIV")
	first := div.Children()[0]
	second := div.Children()[1]
	// second paragraph's margin-top (10) collapses against first's
	// margin-bottom (20): the gap between their boxes is max(10,20) = 20,
	// not 10+20 = 30.
	gap := second.ComputedBox.Y - (first.ComputedBox.Y + first.ComputedBox.Height)
	assert.Equal(t, 20.0, gap)
}

func TestReflowAbsolutePositionUsesInset(t *testing.T) {
	root := loadAndReflow(t, `<div class="abs"></div>`,
		`.abs { position: absolute; top: 15px; left: 25px; }`, 300)
	div := firstElement(root, "DIV")
	assert.Equal(t, 25.0, div.ComputedBox.X)
	assert.Equal(t, 15.0, div.ComputedBox.Y)
}

func TestReflowPercentWidthResolvesAgainstContainer(t *testing.T) {
	root := loadAndReflow(t, `<div class="half"></div>`, `.half { width: 50%; }`, 200)
	div := firstElement(root, "DIV")
	assert.Equal(t, 100.0, div.ComputedBox.Width)
}

// TestReflowTextBlockHeightIncludesTrailingPad is spec.md §8 scenario 2:
// a measurer returning (6·len, 16) on "hi" must produce a div height of
// 24 (16 measured + 8 units of trailing padding), not a bare 16. The
// text's own line stays at its measured width (12); the div, having no
// explicit width and a block (not shrink-to-fit) display, spans the full
// containing block.
func TestReflowTextBlockHeightIncludesTrailingPad(t *testing.T) {
	root := htmlparse.Parse(`<div>hi</div>`)
	dom.ApplyStyles(root, nil)
	Reflow(root, Context{X: 0, Y: 0, ContainerWidth: 200, EmBase: 16, RemBase: 16,
		Measurer: fixedMeasurer{w: 6, h: 16}})
	div := firstElement(root, "DIV")
	text := div.Children()[0]
	assert.Equal(t, 200.0, div.ComputedBox.Width)
	assert.Equal(t, 24.0, div.ComputedBox.Height)
	assert.Equal(t, 12.0, text.TextLines[0].Width)
	assert.Equal(t, 16.0, text.TextLines[0].Height)
}

// TestReflowInlineBlockSiblingsPlaceSideBySide is spec.md §8 scenario 3:
// two display:inline-block spans sit on the same row, the second starting
// where the first's shrink-to-fit box ends.
func TestReflowInlineBlockSiblingsPlaceSideBySide(t *testing.T) {
	root := htmlparse.Parse(`<div><span>a</span><span>b</span></div>`)
	rules := css.NewScanner(`span { display: inline-block; }`).ScanRules()
	dom.ApplyStyles(root, rules)
	Reflow(root, Context{X: 0, Y: 0, ContainerWidth: 200, EmBase: 16, RemBase: 16,
		Measurer: fixedMeasurer{w: 6, h: 16}})
	div := firstElement(root, "DIV")
	spanA, spanB := div.Children()[0], div.Children()[1]
	assert.Equal(t, 0.0, spanA.ComputedBox.X)
	assert.Equal(t, 0.0, spanA.ComputedBox.Y)
	assert.Equal(t, 6.0, spanB.ComputedBox.X)
	assert.Equal(t, 0.0, spanB.ComputedBox.Y)
}

// TestReflowContinuationCursorThreadsFromLastInlineChild exercises
// ComputedBox.ContinueX/ContinueY (spec.md §3, Glossary "Continuation
// cursor"): after a wrapped text flow, they must reflect the final pen
// position rather than sit unset at their zero value.
func TestReflowContinuationCursorThreadsFromLastInlineChild(t *testing.T) {
	root := loadAndReflow(t, `<div>hi</div>`, ``, 200)
	div := firstElement(root, "DIV")
	text := div.Children()[0]
	assert.Equal(t, text.ComputedBox.ContinueX, div.ComputedBox.ContinueX)
	assert.Equal(t, text.ComputedBox.ContinueY, div.ComputedBox.ContinueY)
	assert.Greater(t, div.ComputedBox.ContinueX, 0.0)
}
