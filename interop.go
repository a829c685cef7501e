package xgeom

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// ImageRect returns the box as an image.Rectangle, truncating any
// non-integer coordinates. Consider Round, RoundIn, or RoundOut
// first.
func (b Box[T, U]) ImageRect() image.Rectangle {
	return image.Rect(int(b.Min.X), int(b.Min.Y), int(b.Max.X), int(b.Max.Y))
}

// FromImageRect returns r as a Box.
func FromImageRect[T Scalar, U any](r image.Rectangle) Box[T, U] {
	return Box[T, U]{
		Min: Point[T, U]{T(r.Min.X), T(r.Min.Y)},
		Max: Point[T, U]{T(r.Max.X), T(r.Max.Y)},
	}
}

// Fixed returns the box in 26.6 fixed-point coordinates. Fractions
// finer than 1/64 are truncated.
func (b Box[T, U]) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{
			X: fixed.Int26_6(float64(b.Min.X) * 64),
			Y: fixed.Int26_6(float64(b.Min.Y) * 64),
		},
		Max: fixed.Point26_6{
			X: fixed.Int26_6(float64(b.Max.X) * 64),
			Y: fixed.Int26_6(float64(b.Max.Y) * 64),
		},
	}
}

// FromFixed returns r converted from 26.6 fixed-point coordinates.
func FromFixed[T Scalar, U any](r fixed.Rectangle26_6) Box[T, U] {
	return Box[T, U]{
		Min: Point[T, U]{T(float64(r.Min.X) / 64), T(float64(r.Min.Y) / 64)},
		Max: Point[T, U]{T(float64(r.Max.X) / 64), T(float64(r.Max.Y) / 64)},
	}
}
