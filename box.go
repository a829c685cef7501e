package xgeom

import (
	"fmt"
	"iter"
)

// A Box is an axis-aligned rectangle represented by its minimum and
// maximum corners. It contains the points with Min.X <= X < Max.X and
// Min.Y < Y <= Max.Y; see Contains.
//
// A box is well-formed if Min.X <= Max.X and Min.Y <= Max.Y. Nothing
// enforces this: operations such as Intersect deliberately produce
// negative boxes, which callers treat as empty sentinels instead of
// unwrapping an optional result at every step. The zero value is the
// empty box with both corners at the origin.
type Box[T Scalar, U any] struct {
	Min, Max Point[T, U]
}

// B2 is shorthand for a unit-free box with the given corner
// coordinates. The corners are stored verbatim: unlike image.Rect, B2
// does not swap coordinates to make the box well-formed.
func B2[T Scalar](x0, y0, x1, y1 T) Box[T, UnknownUnit] {
	return Box[T, UnknownUnit]{
		Min: Point[T, UnknownUnit]{x0, y0},
		Max: Point[T, UnknownUnit]{x1, y1},
	}
}

// FromSize returns a box of the given size with its minimum corner at
// the origin.
func FromSize[T Scalar, U any](s Size[T, U]) Box[T, U] {
	return Box[T, U]{Max: Point[T, U]{s.Width, s.Height}}
}

// FromPoints returns the smallest box containing all of the points
// yielded by seq. A sequence of fewer than two points yields the zero
// box, including the single-point case.
func FromPoints[T Scalar, U any](seq iter.Seq[Point[T, U]]) Box[T, U] {
	var b Box[T, U]
	var n int
	for p := range seq {
		if n == 0 {
			b = Box[T, U]{Min: p, Max: p}
		} else {
			b = b.ExpandTo(p)
		}
		n++
	}
	if n < 2 {
		return Box[T, U]{}
	}
	return b
}

// ExpandTo returns the box grown as necessary to contain p.
func (b Box[T, U]) ExpandTo(p Point[T, U]) Box[T, U] {
	b.Min.X = min(b.Min.X, p.X)
	b.Min.Y = min(b.Min.Y, p.Y)
	b.Max.X = max(b.Max.X, p.X)
	b.Max.Y = max(b.Max.Y, p.Y)
	return b
}

// Size returns the extent of the box. It is negative if the box is
// not well-formed.
func (b Box[T, U]) Size() Size[T, U] {
	return b.Max.Diff(b.Min).Size()
}

// Dx returns the box's width.
func (b Box[T, U]) Dx() T {
	return b.Max.X - b.Min.X
}

// Dy returns the box's height.
func (b Box[T, U]) Dy() T {
	return b.Max.Y - b.Min.Y
}

// Area returns the box's area.
func (b Box[T, U]) Area() T {
	s := b.Size()
	return s.Width * s.Height
}

// Center returns the point halfway between the two corners.
func (b Box[T, U]) Center() Point[T, U] {
	return b.Min.Add(b.Max.Vec()).Div(2)
}

// Empty reports whether the box's width or height is exactly zero,
// regardless of sign.
func (b Box[T, U]) Empty() bool {
	return b.Min.X == b.Max.X || b.Min.Y == b.Max.Y
}

// Negative reports whether the box has a negative width or height.
// Negative boxes fall out of intersecting disjoint boxes and are
// commonly interpreted as empty.
func (b Box[T, U]) Negative() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// EmptyOrNegative reports whether the box's area is zero or negative.
func (b Box[T, U]) EmptyOrNegative() bool {
	return b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y
}

// Intersects reports whether b and o overlap in a region of nonzero
// area. Boxes that merely touch along an edge do not intersect.
func (b Box[T, U]) Intersects(o Box[T, U]) bool {
	return b.Min.X < o.Max.X &&
		b.Max.X > o.Min.X &&
		b.Min.Y < o.Max.Y &&
		b.Max.Y > o.Min.Y
}

// Intersect returns the largest box contained by both b and o. If the
// boxes do not intersect, the result is negative.
func (b Box[T, U]) Intersect(o Box[T, U]) Box[T, U] {
	return Box[T, U]{
		Min: Point[T, U]{max(b.Min.X, o.Min.X), max(b.Min.Y, o.Min.Y)},
		Max: Point[T, U]{min(b.Max.X, o.Max.X), min(b.Max.Y, o.Max.Y)},
	}
}

// TryIntersect is like Intersect but reports whether the boxes
// actually intersect instead of returning a negative box. A zero-area
// intersection of boxes that merely touch still counts as present.
func (b Box[T, U]) TryIntersect(o Box[T, U]) (Box[T, U], bool) {
	i := b.Intersect(o)
	if i.Negative() {
		return Box[T, U]{}, false
	}
	return i, true
}

// Union returns the smallest box containing both b and o. Both boxes
// are assumed to be well-formed; a negative operand swallows the
// other box.
func (b Box[T, U]) Union(o Box[T, U]) Box[T, U] {
	return Box[T, U]{
		Min: Point[T, U]{min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y)},
		Max: Point[T, U]{max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y)},
	}
}

// Contains reports whether p is inside b. Membership is half-open, so
// adjacent boxes never claim the same point twice: along the x axis
// the minimum edge is inside and the maximum edge is not, while along
// the y axis it is the maximum edge that is inside. The y-axis
// orientation is historical and kept for compatibility.
func (b Box[T, U]) Contains(p Point[T, U]) bool {
	return b.Min.X <= p.X && p.X < b.Max.X &&
		b.Min.Y < p.Y && p.Y <= b.Max.Y
}

// ContainsBox reports whether b contains the interior of o. An empty
// box is contained in everything, including other empty boxes.
func (b Box[T, U]) ContainsBox(o Box[T, U]) bool {
	return o.Empty() ||
		(b.Min.X <= o.Min.X && o.Max.X <= b.Max.X &&
			b.Min.Y <= o.Min.Y && o.Max.Y <= b.Max.Y)
}

// Translate returns the box shifted by v.
func (b Box[T, U]) Translate(v Vector[T, U]) Box[T, U] {
	return Box[T, U]{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// Scale returns the box with every x coordinate multiplied by sx and
// every y coordinate multiplied by sy.
func (b Box[T, U]) Scale(sx, sy T) Box[T, U] {
	return Box[T, U]{
		Min: Point[T, U]{b.Min.X * sx, b.Min.Y * sy},
		Max: Point[T, U]{b.Max.X * sx, b.Max.Y * sy},
	}
}

// Mul returns the box with both corners scaled uniformly by s.
func (b Box[T, U]) Mul(s T) Box[T, U] {
	return Box[T, U]{Min: b.Min.Mul(s), Max: b.Max.Mul(s)}
}

// Div returns the box with both corners divided uniformly by s.
func (b Box[T, U]) Div(s T) Box[T, U] {
	return Box[T, U]{Min: b.Min.Div(s), Max: b.Max.Div(s)}
}

// Inflate returns the box grown by w on the left and right sides and
// by h on the top and bottom sides. Negative values shrink it.
func (b Box[T, U]) Inflate(w, h T) Box[T, U] {
	return Box[T, U]{
		Min: Point[T, U]{b.Min.X - w, b.Min.Y - h},
		Max: Point[T, U]{b.Max.X + w, b.Max.Y + h},
	}
}

// Inner returns the box shrunk by the given offsets on each side. The
// offsets must not be larger than the corresponding side lengths;
// otherwise the result is ill-formed.
func (b Box[T, U]) Inner(o SideOffsets[T, U]) Box[T, U] {
	return Box[T, U]{
		Min: b.Min.Add(Vector[T, U]{o.Left, o.Top}),
		Max: b.Max.Sub(Vector[T, U]{o.Right, o.Bottom}),
	}
}

// Outer returns the box grown by the given offsets on each side.
func (b Box[T, U]) Outer(o SideOffsets[T, U]) Box[T, U] {
	return Box[T, U]{
		Min: b.Min.Sub(Vector[T, U]{o.Left, o.Top}),
		Max: b.Max.Add(Vector[T, U]{o.Right, o.Bottom}),
	}
}

// Lerp linearly interpolates both corners between b and o. t is
// expected to be between zero and one but is not checked.
func (b Box[T, U]) Lerp(o Box[T, U], t T) Box[T, U] {
	return Box[T, U]{
		Min: b.Min.Lerp(o.Min, t),
		Max: b.Max.Lerp(o.Max, t),
	}
}

// Round returns the box with every coordinate rounded to the nearest
// integer, halves away from zero. The result neither contains nor is
// contained by the original in general; see RoundIn and RoundOut for
// the directed variants.
func (b Box[T, U]) Round() Box[T, U] {
	return Box[T, U]{Min: b.Min.Round(), Max: b.Max.Round()}
}

// RoundIn returns the largest integer-aligned box contained by b. The
// result is ill-formed if b spans less than one unit on either axis.
func (b Box[T, U]) RoundIn() Box[T, U] {
	return Box[T, U]{Min: b.Min.Ceil(), Max: b.Max.Floor()}
}

// RoundOut returns the smallest integer-aligned box containing b.
func (b Box[T, U]) RoundOut() Box[T, U] {
	return Box[T, U]{Min: b.Min.Floor(), Max: b.Max.Ceil()}
}

// Rect returns the origin-plus-size representation of b. The
// round trip through Rect.Box is lossless even for ill-formed boxes,
// though the rect's size is negative in that case.
func (b Box[T, U]) Rect() Rect[T, U] {
	return Rect[T, U]{Origin: b.Min, Size: b.Size()}
}

// Canon returns the canonical version of the box, with the corner
// coordinates swapped as necessary to make it well-formed.
func (b Box[T, U]) Canon() Box[T, U] {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// Resize returns the box with the same minimum corner and the given
// size.
func (b Box[T, U]) Resize(s Size[T, U]) Box[T, U] {
	return Box[T, U]{Min: b.Min, Max: b.Min.Add(s.Vec())}
}

// CenterAt returns the box moved so that its center is at p.
func (b Box[T, U]) CenterAt(p Point[T, U]) Box[T, U] {
	return b.Translate(p.Diff(b.Center()))
}

// Untyped drops the unit, preserving the numeric values.
func (b Box[T, U]) Untyped() Box[T, UnknownUnit] {
	return Box[T, UnknownUnit]{Min: b.Min.Untyped(), Max: b.Max.Untyped()}
}

func (b Box[T, U]) String() string {
	return fmt.Sprintf("Box(%v, %v)", b.Min, b.Max)
}
