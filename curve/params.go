package curve

import (
	"fmt"
	"math"
)

// Policy selects whether a zero pen offset is acceptable.
type Policy int

const (
	// AllowZeroOffset accepts d = 0. The pen then sits on the rolling
	// circle's center and traces a plain circle.
	AllowZeroOffset Policy = iota
	// RequirePositiveOffset rejects d = 0.
	RequirePositiveOffset
)

func (p Policy) String() string {
	switch p {
	case AllowZeroOffset:
		return "lenient"
	case RequirePositiveOffset:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "lenient" and "strict" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "lenient":
		return AllowZeroOffset, nil
	case "strict":
		return RequirePositiveOffset, nil
	}
	return 0, fmt.Errorf("curve: unknown policy %q", s)
}

// Parameters are the three lengths that define a hypotrochoid.
type Parameters struct {
	Fixed   float64 // R, radius of the fixed circle
	Rolling float64 // r, radius of the rolling circle
	Offset  float64 // d, distance from the rolling circle's center to the pen
}

func (p Parameters) String() string {
	return fmt.Sprintf("R=%g r=%g d=%g", p.Fixed, p.Rolling, p.Offset)
}

// Scale multiplies all three lengths by s.
func (p Parameters) Scale(s float64) Parameters {
	return Parameters{Fixed: p.Fixed * s, Rolling: p.Rolling * s, Offset: p.Offset * s}
}

func (p Parameters) values() [3]float64 {
	return [3]float64{p.Fixed, p.Rolling, p.Offset}
}

func (p Parameters) checkFinite() error {
	for _, v := range p.values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v is not finite", ErrInvalidParameters, p)
		}
	}
	return nil
}

// Validate reports whether p can be generated under policy.
func (p Parameters) Validate(policy Policy) error {
	if err := p.checkFinite(); err != nil {
		return err
	}
	switch {
	case p.Fixed <= 0:
		return fmt.Errorf("%w: fixed radius must be positive, got %g", ErrInvalidParameters, p.Fixed)
	case p.Rolling <= 0:
		return fmt.Errorf("%w: rolling radius must be positive, got %g", ErrInvalidParameters, p.Rolling)
	case p.Offset < 0:
		return fmt.Errorf("%w: offset must not be negative, got %g", ErrInvalidParameters, p.Offset)
	case p.Offset == 0 && policy == RequirePositiveOffset:
		return fmt.Errorf("%w: offset must be positive", ErrInvalidParameters)
	}
	return nil
}
