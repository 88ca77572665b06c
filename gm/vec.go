package gm

import (
	"fmt"
	"math"
)

// Vec is a 2d vector of float64 values. The zero value is the zero vector.
//
// All operations are value operations: they return a new Vec and never
// modify the receiver.
type Vec struct {
	X, Y float64
}

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

func VecOf(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// VecSplat returns a vector with both components set to value.
func VecSplat(value float64) Vec {
	return Vec{X: value, Y: value}
}

func (v Vec) Add(other Vec) Vec {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec) Mul(scalar float64) Vec {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec) MulEach(other Vec) Vec {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a vector with the same direction and length one.
// The zero vector has no direction and is returned unchanged, so callers
// never hit a division by zero.
func (v Vec) Normalized() Vec {
	length := v.Length()
	if length == 0 {
		return v
	}

	v.X /= length
	v.Y /= length
	return v
}

// Perp returns the vector rotated clockwise by 90 degrees, (Y, -X).
func (v Vec) Perp() Vec {
	return Vec{X: v.Y, Y: -v.X}
}

// Rotated returns the vector rotated counter-clockwise by the given angle.
func (v Vec) Rotated(angle Rad) Vec {
	sin, cos := math.Sincos(float64(angle))
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

func (v Vec) XY() (float64, float64) {
	return v.X, v.Y
}

func (v Vec) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}
