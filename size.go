package xgeom

import "fmt"

// A Size is a 2D extent with dimensions of type T, measured in the
// unit U. A size can be negative; see Box.Size.
type Size[T Scalar, U any] struct {
	Width, Height T
}

// Sz is shorthand for Size[T, UnknownUnit]{w, h}.
func Sz[T Scalar](w, h T) Size[T, UnknownUnit] {
	return Size[T, UnknownUnit]{w, h}
}

// Vec returns the size reinterpreted as a vector.
func (s Size[T, U]) Vec() Vector[T, U] {
	return Vector[T, U]{s.Width, s.Height}
}

// Div returns s with both dimensions divided by d.
func (s Size[T, U]) Div(d T) Size[T, U] {
	return Size[T, U]{s.Width / d, s.Height / d}
}

// IsEmpty reports whether either dimension is exactly zero.
func (s Size[T, U]) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

func (s Size[T, U]) String() string {
	return fmt.Sprintf("%vx%v", s.Width, s.Height)
}
