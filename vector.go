package xgeom

import "fmt"

// A Vector is a displacement in 2D space with coordinates of type T,
// measured in the unit U.
type Vector[T Scalar, U any] struct {
	X, Y T
}

// Vec is shorthand for Vector[T, UnknownUnit]{x, y}.
func Vec[T Scalar](x, y T) Vector[T, UnknownUnit] {
	return Vector[T, UnknownUnit]{x, y}
}

// Point returns the vector reinterpreted as a point, i.e. the origin
// shifted by v.
func (v Vector[T, U]) Point() Point[T, U] {
	return Point[T, U]{v.X, v.Y}
}

// Size returns the vector reinterpreted as a size.
func (v Vector[T, U]) Size() Size[T, U] {
	return Size[T, U]{v.X, v.Y}
}

// Add returns the sum of the two vectors.
func (v Vector[T, U]) Add(w Vector[T, U]) Vector[T, U] {
	return Vector[T, U]{v.X + w.X, v.Y + w.Y}
}

// Mul returns v with both coordinates multiplied by s.
func (v Vector[T, U]) Mul(s T) Vector[T, U] {
	return Vector[T, U]{v.X * s, v.Y * s}
}

// Neg returns the vector pointing the opposite way.
func (v Vector[T, U]) Neg() Vector[T, U] {
	return Vector[T, U]{-v.X, -v.Y}
}

func (v Vector[T, U]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
