package vmath

import (
	"math"
)

// Vec3 is a 3D vector in Q32.32 fixed-point
// Used by the coin body for linear and angular velocity
type Vec3 struct {
	X, Y, Z int64
}

// V3FromFloat converts float components to Q32.32
func V3FromFloat(x, y, z float64) Vec3 {
	return Vec3{FromFloat(x), FromFloat(y), FromFloat(z)}
}

// Floats returns the components as float64
func (v Vec3) Floats() (x, y, z float64) {
	return ToFloat(v.X), ToFloat(v.Y), ToFloat(v.Z)
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s int64) Vec3 {
	return Vec3{Mul(v.X, s), Mul(v.Y, s), Mul(v.Z, s)}
}

func V3MagSq(v Vec3) int64 {
	return Mul(v.X, v.X) + Mul(v.Y, v.Y) + Mul(v.Z, v.Z)
}

func V3Mag(v Vec3) int64 {
	return Sqrt(V3MagSq(v))
}

// V3Normalize normalizes a 3D vector
// Calculates inverse magnitude once in float, multiplies 3 times
func V3Normalize(v Vec3) Vec3 {
	fx, fy, fz := float64(v.X), float64(v.Y), float64(v.Z)
	mag := math.Sqrt(fx*fx + fy*fy + fz*fz)

	if mag == 0 {
		return Vec3{}
	}

	inv := ScaleF / mag
	return Vec3{
		int64(fx * inv),
		int64(fy * inv),
		int64(fz * inv),
	}
}

// V3Damp reduces vector magnitude by factor (Scale = no damp, 0 = full damp)
func V3Damp(v Vec3, factor int64) Vec3 {
	return Vec3{Mul(v.X, factor), Mul(v.Y, factor), Mul(v.Z, factor)}
}
