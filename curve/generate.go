package curve

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

const (
	// DefaultStepDegrees is the angular distance between two samples.
	DefaultStepDegrees = 5
	// DefaultMaxRotations bounds the rotation count, and with it the
	// number of samples, for nearly equal radii.
	DefaultMaxRotations = 50
)

// Generator samples hypotrochoids. The zero value behaves like
// DefaultGenerator.
type Generator struct {
	// Policy decides whether a zero offset is accepted.
	Policy Policy
	// StepDegrees is the sampling step; it must divide 360.
	// Zero means DefaultStepDegrees.
	StepDegrees int
	// MaxRotations caps the rotation count. Zero means DefaultMaxRotations.
	MaxRotations int
}

// DefaultGenerator returns a lenient Generator sampling every 5 degrees
// over at most 50 rotations.
func DefaultGenerator() Generator {
	return Generator{
		Policy:       AllowZeroOffset,
		StepDegrees:  DefaultStepDegrees,
		MaxRotations: DefaultMaxRotations,
	}
}

// Curve is the result of one generation call.
type Curve struct {
	Params      Parameters // as supplied by the caller
	Normalized  Parameters // after Normalize; equal to Params when Scale is 1
	Scale       float64    // power of ten the coordinates were divided by
	Rotations   int        // full turns of the angle needed to close the curve
	StepDegrees int
	Points      Points
}

// Generate samples p with DefaultGenerator.
func Generate(p Parameters) (*Curve, error) {
	return DefaultGenerator().Generate(p)
}

// Generate validates p, normalizes it when any length is below one and
// samples the closed curve. It returns 360/StepDegrees points per
// rotation, in drawing order, in the units of p. No partial result is
// returned on error.
func (g Generator) Generate(p Parameters) (*Curve, error) {
	step := g.StepDegrees
	if step == 0 {
		step = DefaultStepDegrees
	}
	if step < 0 || step > 360 || 360%step != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStep, step)
	}
	maxRotations := g.MaxRotations
	if maxRotations <= 0 {
		maxRotations = DefaultMaxRotations
	}

	if err := p.Validate(g.Policy); err != nil {
		return nil, err
	}
	n, scale := p, 1.0
	if p.Fixed < 1 || p.Rolling < 1 || p.Offset < 1 {
		var err error
		if n, scale, err = Normalize(p); err != nil {
			return nil, err
		}
	}

	q, err := RotationCount(n.Fixed, n.Rolling, maxRotations)
	if err != nil {
		return nil, err
	}

	points := make(Points, 360*q/step)
	for i := range points {
		points[i] = sample(n, scale, float64(i*step))
	}
	if !points.Finite() {
		return nil, fmt.Errorf("%w: %v overflows", ErrInvalidParameters, p)
	}

	return &Curve{
		Params:      p,
		Normalized:  n,
		Scale:       scale,
		Rotations:   q,
		StepDegrees: step,
		Points:      points,
	}, nil
}

// Path returns the points followed by the sample one step after the
// last, where the pen has come back to the start. Capped curves do not
// close.
func (c *Curve) Path() Points {
	if len(c.Points) == 0 {
		return nil
	}
	path := make(Points, len(c.Points), len(c.Points)+1)
	copy(path, c.Points)
	return append(path, sample(c.Normalized, c.Scale, float64(len(c.Points)*c.StepDegrees)))
}

// sample is the pen position at angle degrees for normalized lengths n,
// divided by scale.
func sample(n Parameters, scale, degrees float64) geom.Coord {
	k := n.Rolling / n.Fixed
	l := n.Offset / n.Rolling
	theta := degToRads(degrees)
	x := n.Fixed * ((1-k)*math.Cos(theta) + l*k*math.Cos((1-k)/k*theta))
	y := n.Fixed * ((1-k)*math.Sin(theta) - l*k*math.Sin((1-k)/k*theta))
	return geom.Coord{X: x / scale, Y: y / scale}
}

// RotationCount returns the number of full turns after which the curve
// for radii fixed and rolling closes, capped at limit:
//
//	round(rolling) / gcd(round(fixed-rolling), round(rolling))
//
// Rounding is half to even. Radii below one lose resolution in the
// rounding, so callers should Normalize first.
func RotationCount(fixed, rolling float64, limit int) (int, error) {
	if limit <= 0 {
		limit = DefaultMaxRotations
	}
	num := math.RoundToEven(fixed - rolling)
	den := math.RoundToEven(rolling)
	g := gcd(num, den)
	if g == 0 || math.IsNaN(g) {
		return 0, fmt.Errorf("%w: gcd(%g, %g) is zero", ErrDegenerateCurve, num, den)
	}
	q := math.Abs(den) / g
	if q < 1 {
		return 0, fmt.Errorf("%w: rolling radius %g rounds to zero", ErrDegenerateCurve, rolling)
	}
	if q > float64(limit) {
		return limit, nil
	}
	return int(q), nil
}

// gcd works on integer-valued floats so that large radii never overflow
// an integer type. math.Mod is exact for such operands.
func gcd(a, b float64) float64 {
	a, b = math.Abs(a), math.Abs(b)
	for b != 0 {
		a, b = b, math.Mod(a, b)
	}
	return a
}
