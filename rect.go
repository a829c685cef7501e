package xgeom

// A Rect is a rectangle described by its origin corner and its size,
// the alternative to Box's pair-of-corners representation. The two
// correspond via Origin = Min and Size = Max - Min.
type Rect[T Scalar, U any] struct {
	Origin Point[T, U]
	Size   Size[T, U]
}

// Box returns the rect as a pair of corners.
func (r Rect[T, U]) Box() Box[T, U] {
	return Box[T, U]{
		Min: r.Origin,
		Max: r.Origin.Add(r.Size.Vec()),
	}
}
