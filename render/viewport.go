package render

import (
	"math"

	"github.com/jbeda/geom"

	"github.com/dyed-eye/spirograph/curve"
)

// titleBand is the height in pixels reserved above the plot for a title.
const titleBand = 24

// Viewport maps curve coordinates onto canvas pixels with equal scaling on
// both axes. Curve y grows upward, canvas y grows downward.
type Viewport struct {
	// Bounds is the padded region of curve space that is visible.
	Bounds geom.Rect
	// Plot is the pixel area the curve is drawn into.
	Plot   geom.Rect
	center geom.Coord
	ppu    float64 // pixels per curve unit
}

// NewViewport fits the bounds of points, padded by style.Padding/scale, into
// the canvas described by style.
func NewViewport(points curve.Points, scale float64, style Style) (Viewport, error) {
	if len(points) == 0 {
		return Viewport{}, ErrNoPoints
	}
	if style.Width <= 0 || style.Height <= 0 {
		return Viewport{}, ErrInvalidSize
	}
	if scale <= 0 {
		scale = 1
	}

	b := points.Bounds()
	pad := style.Padding / scale
	b.Min.X -= pad
	b.Min.Y -= pad
	b.Max.X += pad
	b.Max.Y += pad

	plot := geom.Rect{
		Min: geom.Coord{X: 0, Y: 0},
		Max: geom.Coord{X: float64(style.Width), Y: float64(style.Height)},
	}
	if style.Title != "" && style.Height > 2*titleBand {
		plot.Min.Y = titleBand
	}

	w, h := b.Width(), b.Height()
	// A curve collapsed to a point still gets a finite zoom.
	if curve.AlmostEqual(w, 0) {
		w = 1
	}
	if curve.AlmostEqual(h, 0) {
		h = 1
	}

	return Viewport{
		Bounds: b,
		Plot:   plot,
		center: geom.Coord{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2},
		ppu:    math.Min(plot.Width()/w, plot.Height()/h),
	}, nil
}

// ToCanvas returns the pixel position of c.
func (v Viewport) ToCanvas(c geom.Coord) (float64, float64) {
	cx := (v.Plot.Min.X + v.Plot.Max.X) / 2
	cy := (v.Plot.Min.Y + v.Plot.Max.Y) / 2
	return cx + (c.X-v.center.X)*v.ppu, cy - (c.Y-v.center.Y)*v.ppu
}

// PixelsPerUnit is the zoom factor between curve units and pixels.
func (v Viewport) PixelsPerUnit() float64 {
	return v.ppu
}
