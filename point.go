package xgeom

import (
	"fmt"
	"math"
)

// A Point is a location in 2D space with coordinates of type T,
// measured in the unit U.
type Point[T Scalar, U any] struct {
	X, Y T
}

// Pt is shorthand for Point[T, UnknownUnit]{x, y}.
func Pt[T Scalar](x, y T) Point[T, UnknownUnit] {
	return Point[T, UnknownUnit]{x, y}
}

// Add returns the point shifted by v.
func (p Point[T, U]) Add(v Vector[T, U]) Point[T, U] {
	return Point[T, U]{p.X + v.X, p.Y + v.Y}
}

// Sub returns the point shifted back by v.
func (p Point[T, U]) Sub(v Vector[T, U]) Point[T, U] {
	return Point[T, U]{p.X - v.X, p.Y - v.Y}
}

// Diff returns the displacement from q to p, i.e. p minus q.
func (p Point[T, U]) Diff(q Point[T, U]) Vector[T, U] {
	return Vector[T, U]{p.X - q.X, p.Y - q.Y}
}

// Mul returns p with both coordinates multiplied by s.
func (p Point[T, U]) Mul(s T) Point[T, U] {
	return Point[T, U]{p.X * s, p.Y * s}
}

// Div returns p with both coordinates divided by s.
func (p Point[T, U]) Div(s T) Point[T, U] {
	return Point[T, U]{p.X / s, p.Y / s}
}

// Vec returns p reinterpreted as a displacement from the origin.
func (p Point[T, U]) Vec() Vector[T, U] {
	return Vector[T, U]{p.X, p.Y}
}

// Round returns p with both coordinates rounded to the nearest
// integer, halves away from zero.
func (p Point[T, U]) Round() Point[T, U] {
	return Point[T, U]{round(p.X), round(p.Y)}
}

// Floor returns p with both coordinates rounded down.
func (p Point[T, U]) Floor() Point[T, U] {
	return Point[T, U]{floor(p.X), floor(p.Y)}
}

// Ceil returns p with both coordinates rounded up.
func (p Point[T, U]) Ceil() Point[T, U] {
	return Point[T, U]{ceil(p.X), ceil(p.Y)}
}

// Lerp linearly interpolates between p and q. t is expected to be
// between zero and one, with zero producing p and one producing q, but
// this is not checked.
func (p Point[T, U]) Lerp(q Point[T, U], t T) Point[T, U] {
	return Point[T, U]{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Untyped drops the unit, preserving the numeric values.
func (p Point[T, U]) Untyped() Point[T, UnknownUnit] {
	return Point[T, UnknownUnit]{p.X, p.Y}
}

func (p Point[T, U]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func round[T Scalar](v T) T { return T(math.Round(float64(v))) }
func floor[T Scalar](v T) T { return T(math.Floor(float64(v))) }
func ceil[T Scalar](v T) T  { return T(math.Ceil(float64(v))) }
