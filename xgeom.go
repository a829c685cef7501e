// Package xgeom provides strongly typed primitives for axis-aligned
// rectangular geometry.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// generalizes them over any numeric coordinate type and attaches a
// compile-time unit tag to every value so that, for example, device
// pixels and CSS pixels cannot be mixed by accident. The unit tag is
// phantom: it occupies no storage and disappears entirely at runtime.
package xgeom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the coordinate types that xgeom types and
// functions can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Edges is a bitmask representing zero or more edges of a box.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)
