package xgeom

// UnknownUnit is the unit tag of values that have not been given a
// more specific unit. The shorthand constructors Pt, Vec, Sz, Offsets,
// and B2 all produce values in this unit.
type UnknownUnit struct{}

// A Scale is a multiplicative factor that converts coordinates in the
// Src unit into coordinates in the Dst unit.
type Scale[T Scalar, Src, Dst any] struct {
	Factor T
}

// Sc returns a Scale with the given factor.
func Sc[Src, Dst any, T Scalar](factor T) Scale[T, Src, Dst] {
	return Scale[T, Src, Dst]{Factor: factor}
}

// MulScale converts b from the Src unit to the Dst unit by multiplying
// every coordinate by the scale factor. This is the only box operation
// whose result has a different unit than its input.
func MulScale[T Scalar, Src, Dst any](b Box[T, Src], s Scale[T, Src, Dst]) Box[T, Dst] {
	return Box[T, Dst]{
		Min: Point[T, Dst]{b.Min.X * s.Factor, b.Min.Y * s.Factor},
		Max: Point[T, Dst]{b.Max.X * s.Factor, b.Max.Y * s.Factor},
	}
}

// DivScale converts b from the Dst unit back to the Src unit by
// dividing every coordinate by the scale factor.
func DivScale[T Scalar, Src, Dst any](b Box[T, Dst], s Scale[T, Src, Dst]) Box[T, Src] {
	return Box[T, Src]{
		Min: Point[T, Src]{b.Min.X / s.Factor, b.Min.Y / s.Factor},
		Max: Point[T, Src]{b.Max.X / s.Factor, b.Max.Y / s.Factor},
	}
}

// Typed tags a unitless box with the unit U, preserving the numeric
// values.
func Typed[U any, T Scalar](b Box[T, UnknownUnit]) Box[T, U] {
	return Box[T, U]{
		Min: TypedPoint[U](b.Min),
		Max: TypedPoint[U](b.Max),
	}
}

// TypedPoint tags a unitless point with the unit U, preserving the
// numeric values.
func TypedPoint[U any, T Scalar](p Point[T, UnknownUnit]) Point[T, U] {
	return Point[T, U]{p.X, p.Y}
}
