package xgeom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a box into two boxes arranged horizontally.
func hsplit[T Scalar, U any](b Box[T, U], w T) (left, right Box[T, U]) {
	left = b.Resize(Size[T, U]{w, b.Dy()})
	right = b.Resize(Size[T, U]{b.Dx() - w, b.Dy()}).Translate(Vector[T, U]{w, 0})
	return left, right
}

func hsplitHalf[T Scalar, U any](b Box[T, U]) (left, right Box[T, U]) {
	return hsplit(b, b.Dx()/2)
}

// vsplit splits a box into two boxes arranged vertically.
func vsplit[T Scalar, U any](b Box[T, U], h T) (top, bottom Box[T, U]) {
	top = b.Resize(Size[T, U]{b.Dx(), h})
	bottom = b.Resize(Size[T, U]{b.Dx(), b.Dy() - h}).Translate(Vector[T, U]{0, h})
	return top, bottom
}

func vsplitHalf[T Scalar, U any](b Box[T, U]) (top, bottom Box[T, U]) {
	return vsplit(b, b.Dy()/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split b into a series of boxes that recursively split each
// section halfway to the right and then downwards. In other words,
//
//	tiles := make([]xgeom.Box[float64, xgeom.UnknownUnit], 4)
//	TileRightThenDown(tiles, b)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T Scalar, U any](tiles []Box[T, U], b Box[T, U]) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), b))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown[T Scalar, U any](numtiles int, b Box[T, U]) iter.Seq[Box[T, U]] {
	return func(yield func(Box[T, U]) bool) {
		split, next := hsplitHalf[T, U], vsplitHalf[T, U]

		c, n := split(b)
		for range numtiles - 1 {
			if !yield(c) {
				return
			}

			c, n = split(n)
			split, next = next, split
		}

		yield(n)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of boxes where the first is two-thirds
// the width of b and the rest are arranged vertically in an even
// split in the remaining space.
func TileTwoThirdsSidebar[T Scalar, U any](tiles []Box[T, U], b Box[T, U]) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), b))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive boxes from an iterator instead of
// inserting them into a slice.
func TiledTwoThirdsSidebar[T Scalar, U any](numtiles int, b Box[T, U]) iter.Seq[Box[T, U]] {
	return func(yield func(Box[T, U]) bool) {
		first, rem := hsplit(b, 2*b.Dx()/3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of boxes that comprise an even,
// vertical splitting of b. In other words,
//
//	tiles := make([]xgeom.Box[float64, xgeom.UnknownUnit], 3)
//	TileEvenVertically(tiles, b)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Scalar, U any](tiles []Box[T, U], b Box[T, U]) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), b))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T Scalar, U any](numtiles int, b Box[T, U]) iter.Seq[Box[T, U]] {
	return func(yield func(Box[T, U]) bool) {
		shift := Vector[T, U]{0, b.Dy() / T(numtiles)}
		c, _ := vsplit(b, shift.Y)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Translate(shift)
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of boxes that comprise an even,
// horizontal splitting of b. In other words,
//
//	tiles := make([]xgeom.Box[float64, xgeom.UnknownUnit], 3)
//	TileEvenHorizontally(tiles, b)
//
// will produce
//
// ----------
// |  |  |  |
// ----------
func TileEvenHorizontally[T Scalar, U any](tiles []Box[T, U], b Box[T, U]) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), b))
}

func TiledEvenHorizontally[T Scalar, U any](numtiles int, b Box[T, U]) iter.Seq[Box[T, U]] {
	return func(yield func(Box[T, U]) bool) {
		shift := Vector[T, U]{b.Dx() / T(numtiles), 0}
		c, _ := hsplit(b, shift.X)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Translate(shift)
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces b. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T Scalar, U any](tiles []Box[T, U], b Box[T, U], cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), b, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar, U any](numtiles int, b Box[T, U], cols int) iter.Seq[Box[T, U]] {
	return func(yield func(Box[T, U]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, b)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the box provided and
// then identical copies shifted downwards by its height repeatedly,
// thus producing an infinite vertical stack of boxes below the first.
func VerticalStack[T Scalar, U any](first Box[T, U]) iter.Seq[Box[T, U]] {
	return func(yield func(Box[T, U]) bool) {
		c := first.Canon()
		shift := Vector[T, U]{0, c.Dy()}
		for {
			if !yield(first) {
				return
			}
			first = first.Translate(shift)
		}
	}
}

// ArrangeVerticalStack arranges the subsequent boxes of boxes
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
func ArrangeVerticalStack[T Scalar, U any](boxes []Box[T, U]) {
	if len(boxes) <= 1 {
		return
	}

	prev := boxes[0].Canon()
	for _, b := range boxes {
		if b.Dx() > prev.Dx() {
			prev.Max.X = prev.Min.X + b.Dx()
		}
	}
	boxes[0] = prev

	for i := 1; i < len(boxes); i++ {
		boxes[i] = Box[T, U]{
			Min: Point[T, U]{prev.Min.X, prev.Max.Y},
			Max: Point[T, U]{prev.Max.X, prev.Max.Y + boxes[i].Dy()},
		}
		prev = boxes[i]
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the box as necessary if
// opposite edges are specified.
func Align[T Scalar, U any](outer, inner Box[T, U], edges Edges) Box[T, U] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.Min.Y, inner.Max.Y = outer.Min.Y, outer.Min.Y+inner.Dy()
		if edges&EdgeBottom != 0 {
			inner.Max.Y = outer.Max.Y
		}
	case edges&EdgeBottom != 0:
		inner.Min.Y, inner.Max.Y = outer.Max.Y-inner.Dy(), outer.Max.Y
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.Min.X, inner.Max.X = outer.Min.X, outer.Min.X+inner.Dx()
		if edges&EdgeRight != 0 {
			inner.Max.X = outer.Max.X
		}
	case edges&EdgeRight != 0:
		inner.Min.X, inner.Max.X = outer.Max.X-inner.Dx(), outer.Max.X
	}

	return inner
}

func insertTilesFromSeq[T Scalar, U any](tiles []Box[T, U], s iter.Seq[Box[T, U]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
