// Package curve generates hypotrochoid ("spirograph") point sequences.
//
// A hypotrochoid is traced by a pen attached to a circle of radius r
// rolling inside a fixed circle of radius R, at distance d from the
// rolling circle's center.
//
// What:
//
//   - Normalize rescales sub-unity parameters by a power of ten so the
//     integer rounding behind the rotation count keeps its resolution.
//   - RotationCount derives how many full turns close the curve:
//     q = round(r) / gcd(round(R-r), round(r)), capped.
//   - Generator.Generate samples the curve every StepDegrees over q turns
//     and scales the coordinates back down.
//
// Everything in this package is pure: no I/O, no shared state. Calls may
// run concurrently.
//
// Errors:
//
//   - ErrInvalidParameters: non-finite input, R <= 0, r <= 0, or an
//     offset rejected by the Policy.
//   - ErrDegenerateCurve: the rounded radii give no usable rotation count.
//   - ErrUndefinedScale: no positive parameter to anchor normalization.
//   - ErrInvalidStep: the angular step does not divide a full turn.
package curve
