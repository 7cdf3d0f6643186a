package curve

import (
	"fmt"
	"math"
)

// Normalize scales p up by a power of ten when any length is below one,
// so that the smallest positive length becomes at least one. It returns
// the scaled parameters and the factor used; divide generated coordinates
// by that factor to undo it. Ratios between the lengths are unchanged.
//
// Parameters that are all >= 1 come back untouched with a factor of 1.
func Normalize(p Parameters) (Parameters, float64, error) {
	if err := p.checkFinite(); err != nil {
		return Parameters{}, 0, err
	}
	smallest := math.Inf(1)
	for _, v := range p.values() {
		if v < 0 {
			return Parameters{}, 0, fmt.Errorf("%w: %v has a negative length", ErrInvalidParameters, p)
		}
		if v > 0 && v < smallest {
			smallest = v
		}
	}
	if p.Fixed >= 1 && p.Rolling >= 1 && p.Offset >= 1 {
		return p, 1, nil
	}
	if math.IsInf(smallest, 1) {
		return Parameters{}, 0, fmt.Errorf("%w: no positive length in %v", ErrUndefinedScale, p)
	}
	// A zero offset alone does not need rescaling.
	if smallest >= 1 {
		return p, 1, nil
	}

	// One digit more than needed to lift smallest to unity. Log10 is off
	// by one ulp on some powers of ten, so the estimate is corrected
	// against Pow10 in both directions.
	n := int(math.Floor(-math.Log10(smallest))) + 1
	for n > 1 && math.Pow10(1-n) < smallest {
		n--
	}
	for math.Pow10(-n) >= smallest {
		n++
	}
	scale := math.Pow10(n)
	if math.IsInf(scale, 1) {
		return Parameters{}, 0, fmt.Errorf("%w: %g is too small to rescale", ErrUndefinedScale, smallest)
	}
	scaled := p.Scale(scale)
	if err := scaled.checkFinite(); err != nil {
		return Parameters{}, 0, fmt.Errorf("rescaling by %g: %w", scale, err)
	}
	return scaled, scale, nil
}
