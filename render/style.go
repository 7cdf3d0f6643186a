// Package render rasterizes hypotrochoids, animates their drawing and
// saves the result as PNG or JPEG.
package render

import (
	"errors"
	"image/color"
)

var (
	// ErrNoPoints indicates a curve without points.
	ErrNoPoints = errors.New("render: curve has no points")
	// ErrInvalidSize indicates a canvas without area.
	ErrInvalidSize = errors.New("render: canvas width and height must be positive")
	// ErrUnsupportedFormat indicates a file extension other than .png, .jpg or .jpeg.
	ErrUnsupportedFormat = errors.New("render: unsupported image format")
	// ErrNoFilename indicates an empty file name.
	ErrNoFilename = errors.New("render: no file name")
)

// Style controls how a curve is drawn.
type Style struct {
	Width, Height int // canvas size in pixels
	LineWidth     float64
	Stroke        color.Color
	Background    color.Color
	// Title is drawn centered above the curve. Empty means no title band.
	Title string
	// Padding is the margin around the curve's bounds, in curve units at
	// scale factor 1. It shrinks with the scale factor so that small
	// curves are not dwarfed by their margin.
	Padding float64
}

// DefaultStyle returns an 800x800 white canvas with a blue stroke.
func DefaultStyle() Style {
	return Style{
		Width:      800,
		Height:     800,
		LineWidth:  1.5,
		Stroke:     color.RGBA{B: 0xff, A: 0xff},
		Background: color.White,
		Title:      "Hypotrochoid",
		Padding:    10,
	}
}
