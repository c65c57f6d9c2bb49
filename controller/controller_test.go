package controller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMeasurer struct{}

func (stubMeasurer) Measure(text string, fontSize float64, fontFamily string) (float64, float64) {
	return float64(len(text)) * 6, fontSize
}

func TestLoadParsesAndReflows(t *testing.T) {
	c := New(stubMeasurer{})
	c.Resize(400, 300)
	err := c.Load(`<div class="note">hello</div>`, `.note { color: red; }`)
	require.NoError(t, err)
	assert.NoError(t, c.LastError())
	assert.NotNil(t, c.Root)
}

func TestLoadRejectsEmptyDocument(t *testing.T) {
	c := New(stubMeasurer{})
	err := c.Load("", "")
	assert.Error(t, err)
	assert.Equal(t, err, c.LastError())
}

func TestLoadAppliesUserAgentDefaultsBeforePageStyles(t *testing.T) {
	c := New(stubMeasurer{})
	c.Resize(400, 300)
	require.NoError(t, c.Load(`<h1>Title</h1>`, ``))
	// the built-in UA stylesheet sizes headings distinctly from the 16px
	// body default (controller/default_styles.css).
	h1 := c.Root.Children()[0]
	assert.NotEqual(t, 16.0, h1.ComputedStyle.FontSize.Raw.Number)
}

func TestResizeTriggersReflow(t *testing.T) {
	c := New(stubMeasurer{})
	c.Resize(800, 600)
	require.NoError(t, c.Load(`<div class="half"></div>`, `.half { width: 50%; }`))
	c.Resize(400, 300)
	div := c.Root.Children()[0]
	assert.Equal(t, 200.0, div.ComputedBox.Width)
}

func TestScrollClampsToNonNegative(t *testing.T) {
	c := New(stubMeasurer{})
	c.Scroll(-50)
	assert.Equal(t, 0.0, c.ScrollY)
	c.Scroll(100)
	assert.Equal(t, 100.0, c.ScrollY)
}

func TestMouseMoveHitTestsLoadedDocument(t *testing.T) {
	c := New(stubMeasurer{})
	c.Resize(400, 300)
	require.NoError(t, c.Load(`<div class="box">x</div>`, `.box { background-color: red; }`))
	hit := c.MouseMove(1, 1)
	require.NotNil(t, hit)
	assert.Equal(t, "DIV", hit.TagName)
}

func TestDumpProducesTreeText(t *testing.T) {
	c := New(stubMeasurer{})
	c.Resize(400, 300)
	require.NoError(t, c.Load(`<div><p>hi</p></div>`, ``))
	out := c.Dump()
	assert.True(t, strings.Contains(out, "<DIV>"))
	assert.True(t, strings.Contains(out, "<P>"))
}
