package raster

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FallbackMeasurer implements layout.TextMeasurer using the bitmap font
// golang.org/x/image/font/basicfont ships inline, so it works with no
// filesystem font file at all — used when FontPath can't be loaded (e.g.
// the container has no TTF installed).
type FallbackMeasurer struct{}

// Measure scales basicfont.Face7x13's fixed 13px glyph advances to the
// requested fontSize.
func (FallbackMeasurer) Measure(text string, fontSize float64, fontFamily string) (width, height float64) {
	_ = fontFamily
	face := basicfont.Face7x13
	bounds, _ := font.BoundString(face, text)
	const nativeSize = 13.0
	scale := fontSize / nativeSize
	w := float64(bounds.Max.X-bounds.Min.X) / 64.0
	return w * scale, fontSize * 1.2
}
