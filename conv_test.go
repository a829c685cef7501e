package xgeom_test

import (
	"image"
	"math"
	"testing"

	"deedles.dev/xgeom"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestBConv(t *testing.T) {
	b := xgeom.B2(1.9, -1.9, 3.7, 4.2)
	i := xgeom.BConv[int](b)
	require.Equal(t, xgeom.B2(1, -1, 3, 4), i)

	f := xgeom.BConv[float64](i)
	require.Equal(t, xgeom.B2(1.0, -1.0, 3.0, 4.0), f)
}

func TestTryBConv(t *testing.T) {
	b, ok := xgeom.TryBConv[int32](xgeom.B2(1.9, -1.9, 3.7, 4.2))
	require.True(t, ok)
	require.Equal(t, xgeom.B2[int32](1, -1, 3, 4), b)

	_, ok = xgeom.TryBConv[int32](xgeom.B2(math.NaN(), 0, 1, 1))
	require.False(t, ok)

	_, ok = xgeom.TryBConv[int32](xgeom.B2(0, 0, math.Inf(1), 1))
	require.False(t, ok)

	_, ok = xgeom.TryBConv[int8](xgeom.B2(0.0, 0.0, 300.0, 1.0))
	require.False(t, ok)

	_, ok = xgeom.TryBConv[uint32](xgeom.B2(-1.0, 0.0, 1.0, 1.0))
	require.False(t, ok)

	// NaN converted to a float type is representable.
	f, ok := xgeom.TryBConv[float32](xgeom.B2(math.NaN(), 0, 1, 1))
	require.True(t, ok)
	require.True(t, math.IsNaN(float64(f.Min.X)))
}

func TestTryPConvNamedType(t *testing.T) {
	type texel int16

	p, ok := xgeom.TryPConv[texel](xgeom.Pt(100.5, -3.0))
	require.True(t, ok)
	require.Equal(t, xgeom.Point[texel, xgeom.UnknownUnit]{100, -3}, p)

	_, ok = xgeom.TryPConv[texel](xgeom.Pt(1e6, 0.0))
	require.False(t, ok)
}

func TestConvenienceCasts(t *testing.T) {
	b := xgeom.B2(1.9, -1.9, 3.7, 4.2)
	require.Equal(t, xgeom.B2[float32](1.9, -1.9, 3.7, 4.2), b.ToF32())
	require.Equal(t, b, b.ToF64())
	require.Equal(t, xgeom.B2[int32](1, -1, 3, 4), b.ToI32())
	require.Equal(t, xgeom.B2[int64](1, -1, 3, 4), b.ToI64())
	require.Equal(t, xgeom.B2(1, -1, 3, 4), b.ToInt())
	require.Equal(t, xgeom.B2[uint32](1, 2, 3, 4), xgeom.B2(1.9, 2.0, 3.7, 4.2).ToU32())
}

type inch struct{}
type millimeter struct{}

func TestUnitScale(t *testing.T) {
	b := xgeom.Typed[inch](xgeom.B2(1.0, 2.0, 3.0, 4.0))
	s := xgeom.Sc[inch, millimeter](25.4)

	mm := xgeom.MulScale(b, s)
	require.InDelta(t, 25.4, mm.Min.X, 1e-9)
	require.InDelta(t, 50.8, mm.Min.Y, 1e-9)
	require.InDelta(t, 76.2, mm.Max.X, 1e-9)
	require.InDelta(t, 101.6, mm.Max.Y, 1e-9)

	back := xgeom.DivScale(mm, s)
	require.InDelta(t, 1.0, back.Min.X, 1e-12)
	require.InDelta(t, 4.0, back.Max.Y, 1e-12)
}

func TestTypedUntyped(t *testing.T) {
	b := xgeom.Typed[inch](xgeom.B2(1.0, 2.0, 3.0, 4.0))
	require.Equal(t, b, xgeom.Typed[inch](b.Untyped()))
	require.Equal(t, xgeom.B2(1.0, 2.0, 3.0, 4.0), b.Untyped())
}

func TestJSON(t *testing.T) {
	b := xgeom.B2(1.0, 2.0, 3.0, 4.0)

	data, err := b.MarshalJSON()
	require.Nil(t, err)
	require.JSONEq(t, `[[1, 2], [3, 4]]`, string(data))

	var got xgeom.Box[float64, xgeom.UnknownUnit]
	require.Nil(t, got.UnmarshalJSON(data))
	require.Equal(t, b, got)

	require.NotNil(t, got.UnmarshalJSON([]byte(`"box"`)))
}

func TestImageRect(t *testing.T) {
	b := xgeom.B2(1.9, 2.0, 3.7, 4.0)
	require.Equal(t, image.Rect(1, 2, 3, 4), b.ImageRect())

	f := xgeom.FromImageRect[float64, xgeom.UnknownUnit](image.Rect(1, 2, 3, 4))
	require.Equal(t, xgeom.B2(1.0, 2.0, 3.0, 4.0), f)
}

func TestFixed(t *testing.T) {
	b := xgeom.B2(1.5, 2.0, 3.25, 4.0)

	fx := b.Fixed()
	want := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: 96, Y: 128},
		Max: fixed.Point26_6{X: 208, Y: 256},
	}
	require.Equal(t, want, fx)

	require.Equal(t, b, xgeom.FromFixed[float64, xgeom.UnknownUnit](fx))
}
