package curve

import (
	"math"

	"github.com/jbeda/geom"
)

// Comparing floating point is never exact. This tolerance is good enough
// for curves measured in pixels or a handful of units.
const floatEqualThresh = 1e-8

// AlmostEqual reports whether a and b differ by less than a small fixed
// tolerance.
func AlmostEqual(a, b float64) bool {
	return math.Abs(a-b) < floatEqualThresh
}

// AlmostEqualCoords reports whether a and b are AlmostEqual on both axes.
func AlmostEqualCoords(a, b geom.Coord) bool {
	return AlmostEqual(a.X, b.X) && AlmostEqual(a.Y, b.Y)
}

// Points is an ordered point sequence. Order is drawing order.
type Points []geom.Coord

// Bounds returns the smallest rectangle containing every point.
// An empty sequence has a zero Rect.
func (ps Points) Bounds() geom.Rect {
	if len(ps) == 0 {
		return geom.Rect{}
	}
	r := geom.Rect{Min: ps[0], Max: ps[0]}
	for _, p := range ps[1:] {
		r.ExpandToContainCoord(p)
	}
	return r
}

// Length is the length of the polyline through the points in order.
func (ps Points) Length() float64 {
	total := 0.0
	for i := 1; i < len(ps); i++ {
		total += ps[i-1].DistanceFrom(ps[i])
	}
	return total
}

// Closed reports whether the last point returns to the first.
func (ps Points) Closed() bool {
	if len(ps) < 2 {
		return false
	}
	return AlmostEqualCoords(ps[0], ps[len(ps)-1])
}

// Finite reports whether every coordinate is a finite number.
func (ps Points) Finite() bool {
	for _, p := range ps {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

func degToRads(d float64) float64 {
	return d * math.Pi / 180.0
}
