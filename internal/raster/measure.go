// Package raster is the optional, demo-only external collaborator
// (spec.md §6): a TextMeasurer and 2D rasterizer consumed only by
// cmd/miniweb (the root dump command uses FallbackMeasurer; the `render`
// subcommand uses Measurer and Rasterizer), never by the core css/style/
// layout/render packages.
package raster

import (
	"sync"

	"github.com/fogleman/gg"
)

// Measurer implements layout.TextMeasurer using fogleman/gg's
// font-face-loaded MeasureString, grounded on the same approach
// iansmith-louis14's pkg/text.MeasureText uses.
type Measurer struct {
	FontPath string

	mu sync.Mutex
	dc *gg.Context
}

// NewMeasurer creates a Measurer that loads fontPath on demand.
func NewMeasurer(fontPath string) *Measurer {
	return &Measurer{FontPath: fontPath, dc: gg.NewContext(1, 1)}
}

// Measure returns text's rendered width/height at fontSize. fontFamily is
// accepted to satisfy the TextMeasurer contract but this demo measurer
// only ever loads FontPath; a real browser would map fontFamily to an
// installed font file.
func (m *Measurer) Measure(text string, fontSize float64, fontFamily string) (width, height float64) {
	_ = fontFamily
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.dc.LoadFontFace(m.FontPath, fontSize); err != nil {
		return FallbackMeasurer{}.Measure(text, fontSize, fontFamily)
	}
	w, h := m.dc.MeasureString(text)
	return w, h
}
