package render_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyed-eye/spirograph/curve"
	"github.com/dyed-eye/spirograph/render"
)

// TestAnimator_Frames checks the frame schedule: every FrameEvery points
// plus the final point.
func TestAnimator_Frames(t *testing.T) {
	c := mustGenerate(t, curve.Parameters{Fixed: 10, Rolling: 5, Offset: 2}) // 72 points
	a := &render.Animator{Style: smallStyle(), FrameEvery: 10}

	var drawn []int
	img, err := a.Run(context.Background(), c, func(f render.Frame) error {
		assert.Equal(t, 72, f.Total)
		assert.NotNil(t, f.Image)
		drawn = append(drawn, f.Drawn)
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 72}, drawn)
	assert.Positive(t, countInk(img, smallStyle().Background))
}

// TestAnimator_Delay checks that the per-point delay is honoured.
func TestAnimator_Delay(t *testing.T) {
	c := mustGenerate(t, curve.Parameters{Fixed: 10, Rolling: 5, Offset: 2})
	a := &render.Animator{Style: smallStyle(), Delay: time.Millisecond}

	start := time.Now()
	_, err := a.Run(context.Background(), c, nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 71*time.Millisecond)
}

// TestAnimator_Cancel stops the animation from inside a frame callback.
func TestAnimator_Cancel(t *testing.T) {
	c := mustGenerate(t, curve.Parameters{Fixed: 220, Rolling: 65, Offset: 110})
	for _, delay := range []time.Duration{0, time.Millisecond} {
		ctx, cancel := context.WithCancel(context.Background())
		a := &render.Animator{Style: smallStyle(), Delay: delay, FrameEvery: 5}

		frames := 0
		img, err := a.Run(ctx, c, func(render.Frame) error {
			frames++
			cancel()
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, img)
		assert.Equal(t, 1, frames)
		cancel()
	}
}

// TestAnimator_CallbackError aborts on the first callback error.
func TestAnimator_CallbackError(t *testing.T) {
	c := mustGenerate(t, curve.Parameters{Fixed: 10, Rolling: 5, Offset: 2})
	boom := errors.New("boom")
	a := &render.Animator{Style: smallStyle()}
	_, err := a.Run(context.Background(), c, func(render.Frame) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestAnimator_NoPoints(t *testing.T) {
	a := &render.Animator{Style: smallStyle()}
	_, err := a.Run(context.Background(), &curve.Curve{}, nil)
	assert.ErrorIs(t, err, render.ErrNoPoints)
}
