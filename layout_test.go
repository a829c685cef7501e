package xgeom_test

import (
	"testing"

	"deedles.dev/xgeom"
	"github.com/stretchr/testify/require"
)

type ubox = xgeom.Box[float64, xgeom.UnknownUnit]

func TestTileEvenVertically(t *testing.T) {
	tiles := make([]ubox, 3)
	xgeom.TileEvenVertically(tiles, xgeom.B2(0.0, 0.0, 30.0, 30.0))

	require.Equal(t, []ubox{
		xgeom.B2(0.0, 0.0, 30.0, 10.0),
		xgeom.B2(0.0, 10.0, 30.0, 20.0),
		xgeom.B2(0.0, 20.0, 30.0, 30.0),
	}, tiles)
}

func TestTileEvenHorizontally(t *testing.T) {
	tiles := make([]ubox, 3)
	xgeom.TileEvenHorizontally(tiles, xgeom.B2(0.0, 0.0, 30.0, 30.0))

	require.Equal(t, []ubox{
		xgeom.B2(0.0, 0.0, 10.0, 30.0),
		xgeom.B2(10.0, 0.0, 20.0, 30.0),
		xgeom.B2(20.0, 0.0, 30.0, 30.0),
	}, tiles)
}

func TestTileRightThenDown(t *testing.T) {
	tiles := make([]ubox, 4)
	xgeom.TileRightThenDown(tiles, xgeom.B2(0.0, 0.0, 100.0, 100.0))

	require.Equal(t, []ubox{
		xgeom.B2(0.0, 0.0, 50.0, 100.0),
		xgeom.B2(50.0, 0.0, 100.0, 50.0),
		xgeom.B2(50.0, 50.0, 75.0, 100.0),
		xgeom.B2(75.0, 50.0, 100.0, 100.0),
	}, tiles)
}

func TestTileTwoThirdsSidebar(t *testing.T) {
	tiles := make([]ubox, 3)
	xgeom.TileTwoThirdsSidebar(tiles, xgeom.B2(0.0, 0.0, 90.0, 60.0))

	require.Equal(t, []ubox{
		xgeom.B2(0.0, 0.0, 60.0, 60.0),
		xgeom.B2(60.0, 0.0, 90.0, 30.0),
		xgeom.B2(60.0, 30.0, 90.0, 60.0),
	}, tiles)
}

func TestTileRows(t *testing.T) {
	tiles := make([]ubox, 4)
	xgeom.TileRows(tiles, xgeom.B2(0.0, 0.0, 20.0, 20.0), 2)

	require.Equal(t, []ubox{
		xgeom.B2(0.0, 0.0, 10.0, 10.0),
		xgeom.B2(10.0, 0.0, 20.0, 10.0),
		xgeom.B2(0.0, 10.0, 10.0, 20.0),
		xgeom.B2(10.0, 10.0, 20.0, 20.0),
	}, tiles)
}

func TestTileRowsPartialLastRow(t *testing.T) {
	tiles := make([]ubox, 3)
	xgeom.TileRows(tiles, xgeom.B2(0.0, 0.0, 20.0, 20.0), 2)

	require.Equal(t, []ubox{
		xgeom.B2(0.0, 0.0, 10.0, 10.0),
		xgeom.B2(10.0, 0.0, 20.0, 10.0),
		xgeom.B2(0.0, 10.0, 20.0, 20.0),
	}, tiles)
}

func TestVerticalStack(t *testing.T) {
	var got []ubox
	for b := range xgeom.VerticalStack(xgeom.B2(0.0, 0.0, 10.0, 5.0)) {
		got = append(got, b)
		if len(got) == 3 {
			break
		}
	}

	require.Equal(t, []ubox{
		xgeom.B2(0.0, 0.0, 10.0, 5.0),
		xgeom.B2(0.0, 5.0, 10.0, 10.0),
		xgeom.B2(0.0, 10.0, 10.0, 15.0),
	}, got)
}

func TestArrangeVerticalStack(t *testing.T) {
	boxes := []ubox{
		xgeom.B2(0.0, 0.0, 10.0, 5.0),
		xgeom.B2(0.0, 0.0, 20.0, 5.0),
		xgeom.B2(0.0, 0.0, 5.0, 5.0),
	}
	xgeom.ArrangeVerticalStack(boxes)

	require.Equal(t, []ubox{
		xgeom.B2(0.0, 0.0, 20.0, 5.0),
		xgeom.B2(0.0, 5.0, 20.0, 10.0),
		xgeom.B2(0.0, 10.0, 20.0, 15.0),
	}, boxes)
}

func TestAlign(t *testing.T) {
	outer := xgeom.B2(0.0, 0.0, 100.0, 100.0)
	inner := xgeom.B2(0.0, 0.0, 10.0, 10.0)

	require.Equal(t, xgeom.B2(45.0, 45.0, 55.0, 55.0), xgeom.Align(outer, inner, xgeom.EdgeNone))
	require.Equal(t, xgeom.B2(0.0, 0.0, 10.0, 10.0), xgeom.Align(outer, inner, xgeom.EdgeTop|xgeom.EdgeLeft))
	require.Equal(t, xgeom.B2(90.0, 90.0, 100.0, 100.0), xgeom.Align(outer, inner, xgeom.EdgeBottom|xgeom.EdgeRight))
	require.Equal(t, xgeom.B2(0.0, 0.0, 10.0, 100.0), xgeom.Align(outer, inner, xgeom.EdgeTop|xgeom.EdgeBottom|xgeom.EdgeLeft))
}
