package render

import (
	"image"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dyed-eye/spirograph/curve"
)

// Renderer draws whole curves in one pass.
type Renderer struct {
	Style Style
}

// NewRenderer returns a Renderer using style.
func NewRenderer(style Style) *Renderer {
	return &Renderer{Style: style}
}

// Render draws c onto a fresh canvas, joining the last sample back to
// the start.
func (r *Renderer) Render(c *curve.Curve) (*image.RGBA, error) {
	cv, err := newCanvas(c, r.Style)
	if err != nil {
		return nil, err
	}
	cv.points = c.Path()
	cv.stroke(0, len(cv.points)-1)
	return cv.img, nil
}

// canvas is an image with a viewport and a stroking context bound to one curve.
type canvas struct {
	img    *image.RGBA
	gc     *draw2dimg.GraphicContext
	vp     Viewport
	points curve.Points
}

func newCanvas(c *curve.Curve, style Style) (*canvas, error) {
	if c == nil || len(c.Points) == 0 {
		return nil, ErrNoPoints
	}
	vp, err := NewViewport(c.Points, c.Scale, style)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, style.Width, style.Height))
	if style.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
	}
	if style.Title != "" && vp.Plot.Min.Y > 0 {
		drawTitle(img, style)
	}

	gc := draw2dimg.NewGraphicContext(img)
	if style.Stroke != nil {
		gc.SetStrokeColor(style.Stroke)
	}
	gc.SetLineWidth(style.LineWidth)
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)

	return &canvas{img: img, gc: gc, vp: vp, points: c.Points}, nil
}

// stroke draws the polyline through points[from..to] inclusive.
func (cv *canvas) stroke(from, to int) {
	if to <= from {
		return
	}
	cv.gc.BeginPath()
	cv.gc.MoveTo(cv.vp.ToCanvas(cv.points[from]))
	for i := from + 1; i <= to; i++ {
		cv.gc.LineTo(cv.vp.ToCanvas(cv.points[i]))
	}
	cv.gc.Stroke()
}

func drawTitle(img *image.RGBA, style Style) {
	src := image.Black
	if style.Stroke != nil {
		src = image.NewUniform(style.Stroke)
	}
	d := &font.Drawer{Dst: img, Src: src, Face: basicfont.Face7x13}
	width := d.MeasureString(style.Title).Ceil()
	// Baseline sits a few pixels above the bottom of the title band.
	d.Dot = fixed.P((style.Width-width)/2, titleBand-7)
	d.DrawString(style.Title)
}
