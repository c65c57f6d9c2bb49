package raster

import (
	"image"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	"github.com/npillmayer/miniweb/color"
	"github.com/npillmayer/miniweb/render"
)

// Rasterizer paints a render.RenderItem list to a raster image using
// fogleman/gg, grounded on iansmith-louis14's pkg/render.Renderer shape
// (a wrapped *gg.Context painted in paint-list order).
type Rasterizer struct {
	dc       *gg.Context
	fontPath string
}

// NewRasterizer creates a Rasterizer targeting a width x height canvas.
func NewRasterizer(width, height int, fontPath string) *Rasterizer {
	return &Rasterizer{dc: gg.NewContext(width, height), fontPath: fontPath}
}

// Paint clears the canvas white and draws arr back-to-front: each item
// later in the slice paints over whatever is already there, matching
// BuildRenderArray's parent-then-children document order.
func (r *Rasterizer) Paint(arr []render.RenderItem) {
	r.dc.SetRGB(1, 1, 1)
	r.dc.Clear()
	for _, item := range arr {
		if item.Text != "" {
			r.paintText(item)
			continue
		}
		r.paintBox(item)
	}
}

func (r *Rasterizer) paintBox(item render.RenderItem) {
	cs := item.Node.ComputedStyle
	if cs == nil {
		return
	}
	bg := color.Parse(cs.BackgroundColor)
	if bg.A == 0 {
		return
	}
	r.dc.SetRGBA(bg.R, bg.G, bg.B, bg.A)
	b := item.Box
	r.dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
	r.dc.Fill()
	if item.Node.ComputedBox.HoverRect {
		r.dc.SetRGBA(0.2, 0.4, 1, 0.6)
		r.dc.DrawRectangle(b.X, b.Y, b.Width, b.Height)
		r.dc.SetLineWidth(1.5)
		r.dc.Stroke()
	}
}

func (r *Rasterizer) paintText(item render.RenderItem) {
	parent := item.Node.Parent()
	fontSize := 16.0
	textColor := "black"
	if parent != nil && parent.ComputedStyle != nil {
		fontSize = parent.ComputedStyle.FontSize.Resolved
		textColor = parent.ComputedStyle.Color
	}
	if fontSize == 0 {
		fontSize = 16
	}
	if err := r.dc.LoadFontFace(r.fontPath, fontSize); err != nil {
		return
	}
	c := color.Parse(textColor)
	r.dc.SetRGBA(c.R, c.G, c.B, 1)
	r.dc.DrawString(item.Text, item.Box.X, item.Box.Y+item.Box.Height)
}

// Encode writes the rasterized canvas as a PNG.
func (r *Rasterizer) Encode(w io.Writer) error {
	return png.Encode(w, r.dc.Image())
}

// Image returns the underlying raster image, e.g. for HitTest coordinate
// calibration in a windowed demo.
func (r *Rasterizer) Image() image.Image { return r.dc.Image() }
