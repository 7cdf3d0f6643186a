package curve

import "errors"

var (
	// ErrInvalidParameters indicates radii that cannot describe a curve.
	ErrInvalidParameters = errors.New("curve: invalid parameters")
	// ErrDegenerateCurve indicates the rotation count cannot be derived.
	ErrDegenerateCurve = errors.New("curve: degenerate curve")
	// ErrUndefinedScale indicates normalization found no positive parameter.
	ErrUndefinedScale = errors.New("curve: undefined scale")
	// ErrInvalidStep indicates an angular step that does not divide 360 degrees.
	ErrInvalidStep = errors.New("curve: step must divide 360 degrees")
)
