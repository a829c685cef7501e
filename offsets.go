package xgeom

// SideOffsets describes a set of offsets from the four sides of a box,
// such as margins or padding.
type SideOffsets[T Scalar, U any] struct {
	Top, Right, Bottom, Left T
}

// Offsets is shorthand for a unit-free SideOffsets. The argument order
// matches CSS shorthand notation: top, right, bottom, left.
func Offsets[T Scalar](top, right, bottom, left T) SideOffsets[T, UnknownUnit] {
	return SideOffsets[T, UnknownUnit]{Top: top, Right: right, Bottom: bottom, Left: left}
}
