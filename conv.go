package xgeom

import (
	"math"
	"reflect"
)

// PConv converts a Point[In] to a Point[Out], preserving the unit.
// Float coordinates are truncated toward zero when Out is an integer
// type, which does not always make sense geometrically; consider
// rounding first.
func PConv[Out, In Scalar, U any](p Point[In, U]) Point[Out, U] {
	return Point[Out, U]{Out(p.X), Out(p.Y)}
}

// BConv converts a Box[In] to a Box[Out], preserving the unit. See
// PConv for the conversion behavior.
func BConv[Out, In Scalar, U any](b Box[In, U]) Box[Out, U] {
	return Box[Out, U]{
		Min: PConv[Out](b.Min),
		Max: PConv[Out](b.Max),
	}
}

// TryPConv is like PConv but reports failure instead of producing an
// implementation-defined result when a coordinate cannot be
// represented by Out: a NaN or infinite coordinate converted to an
// integer type, or a value outside the integer type's range.
func TryPConv[Out, In Scalar, U any](p Point[In, U]) (Point[Out, U], bool) {
	x, ok := tryConvert[Out](p.X)
	if !ok {
		return Point[Out, U]{}, false
	}
	y, ok := tryConvert[Out](p.Y)
	if !ok {
		return Point[Out, U]{}, false
	}
	return Point[Out, U]{x, y}, true
}

// TryBConv is like BConv but fails if any coordinate fails to
// convert.
func TryBConv[Out, In Scalar, U any](b Box[In, U]) (Box[Out, U], bool) {
	bmin, ok := TryPConv[Out](b.Min)
	if !ok {
		return Box[Out, U]{}, false
	}
	bmax, ok := TryPConv[Out](b.Max)
	if !ok {
		return Box[Out, U]{}, false
	}
	return Box[Out, U]{Min: bmin, Max: bmax}, true
}

// tryConvert uses reflection rather than a type switch so that named
// types defined on top of the builtin numeric types are handled too.
func tryConvert[Out, In Scalar](v In) (Out, bool) {
	var out Out
	t := reflect.TypeOf(out)

	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return Out(v), true
	}

	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return out, false
	}

	trunc := math.Trunc(f)
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if trunc < 0 || trunc >= math.Ldexp(1, t.Bits()) {
			return out, false
		}
	default:
		limit := math.Ldexp(1, t.Bits()-1)
		if trunc < -limit || trunc >= limit {
			return out, false
		}
	}
	return Out(v), true
}

// ToF32 returns the box converted to float32 coordinates.
func (b Box[T, U]) ToF32() Box[float32, U] { return BConv[float32](b) }

// ToF64 returns the box converted to float64 coordinates.
func (b Box[T, U]) ToF64() Box[float64, U] { return BConv[float64](b) }

// ToI32 returns the box converted to int32 coordinates, truncating
// any decimals. Consider Round, RoundIn, or RoundOut first.
func (b Box[T, U]) ToI32() Box[int32, U] { return BConv[int32](b) }

// ToI64 returns the box converted to int64 coordinates, truncating
// any decimals. Consider Round, RoundIn, or RoundOut first.
func (b Box[T, U]) ToI64() Box[int64, U] { return BConv[int64](b) }

// ToU32 returns the box converted to uint32 coordinates, truncating
// any decimals. Consider Round, RoundIn, or RoundOut first.
func (b Box[T, U]) ToU32() Box[uint32, U] { return BConv[uint32](b) }

// ToInt returns the box converted to int coordinates, truncating any
// decimals. Consider Round, RoundIn, or RoundOut first.
func (b Box[T, U]) ToInt() Box[int, U] { return BConv[int](b) }
