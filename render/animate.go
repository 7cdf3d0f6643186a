package render

import (
	"context"
	"image"
	"time"

	"github.com/dyed-eye/spirograph/curve"
)

// Frame is a snapshot of an animation in progress. Image is the live
// canvas: it keeps changing after the callback returns, so copy it if
// it must outlive the call.
type Frame struct {
	Image *image.RGBA
	Drawn int // points drawn so far
	Total int
}

// Animator draws a curve one point at a time.
type Animator struct {
	Style Style
	// Delay is the pause between two points. Zero draws as fast as possible.
	Delay time.Duration
	// FrameEvery is how many points pass between two frame callbacks.
	// The last point always produces a frame. Values below one mean one.
	FrameEvery int
}

// Run animates c and returns the finished image. onFrame may be nil; an
// error from it stops the animation and is returned. Cancelling ctx stops
// the animation between two points with ctx.Err().
func (a *Animator) Run(ctx context.Context, c *curve.Curve, onFrame func(Frame) error) (*image.RGBA, error) {
	cv, err := newCanvas(c, a.Style)
	if err != nil {
		return nil, err
	}
	every := a.FrameEvery
	if every < 1 {
		every = 1
	}
	var tick <-chan time.Time
	if a.Delay > 0 {
		t := time.NewTicker(a.Delay)
		defer t.Stop()
		tick = t.C
	}

	n := len(c.Points)
	cv.points = c.Path()
	for i := 0; i < n; i++ {
		if i > 0 {
			cv.stroke(i-1, i)
		}
		drawn := i + 1
		if drawn == n {
			// Close the curve back onto its first point.
			cv.stroke(n-1, n)
		}
		if onFrame != nil && (drawn%every == 0 || drawn == n) {
			if err := onFrame(Frame{Image: cv.img, Drawn: drawn, Total: n}); err != nil {
				return nil, err
			}
		}
		if drawn == n {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-tick:
			}
		}
	}
	return cv.img, nil
}
