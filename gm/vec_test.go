package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec_AddSub(t *testing.T) {
	a := Vec{X: 1, Y: 2}
	b := Vec{X: -3, Y: 0.5}

	require.Equal(t, a.Add(b), b.Add(a))
	require.Equal(t, Vec{X: -2, Y: 2.5}, a.Add(b))
	require.Equal(t, VecZero, a.Sub(a))
	require.Equal(t, Vec{X: 4, Y: 1.5}, a.Sub(b))
}

func TestVec_Mul(t *testing.T) {
	v := Vec{X: 2, Y: -3}
	require.Equal(t, Vec{X: 5, Y: -7.5}, v.Mul(2.5))
	require.Equal(t, VecZero, v.Mul(0))
}

func TestVec_Dot(t *testing.T) {
	a := Vec{X: 3, Y: 4}
	b := Vec{X: -1, Y: 2}

	require.Equal(t, 5.0, a.Dot(b))
	require.Equal(t, a.Dot(b), b.Dot(a))

	// perpendicular vectors
	require.Equal(t, 0.0, a.Dot(a.Perp()))
}

func TestVec_Normalized(t *testing.T) {
	for _, v := range []Vec{
		{X: 3, Y: 4},
		{X: -0.001, Y: 0},
		{X: 1e6, Y: -1e6},
	} {
		require.InDelta(t, 1.0, v.Normalized().Length(), 1e-9, "vec %s", v)
	}

	// the zero vector has no direction and stays unchanged
	require.Equal(t, VecZero, VecZero.Normalized())
}

func TestVec_Rotated(t *testing.T) {
	r := Vec{X: 1, Y: 0}.Rotated(DegToRad(90))
	require.InDelta(t, 0, r.X, 1e-9)
	require.InDelta(t, 1, r.Y, 1e-9)

	r = Vec{X: 1, Y: 1}.Rotated(DegToRad(180))
	require.InDelta(t, -1, r.X, 1e-9)
	require.InDelta(t, -1, r.Y, 1e-9)
}

func TestVec_Length(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	require.Equal(t, 5.0, v.Length())
	require.Equal(t, 25.0, v.LengthSqr())
	require.Equal(t, math.Sqrt2, VecOne.Length())
}
