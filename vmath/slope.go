package vmath

import (
	"fmt"
	"math"
)

// Slope is the line y = M*x + B
// Vertical lines are not representable; two points sharing an x coordinate yield M = 0
type Slope struct {
	M float64
	B float64
}

// NewSlope returns the line through p1 and p2
// A slope too steep to represent falls back to the horizontal through p1
func NewSlope(p1, p2 Point) Slope {
	m := SafeDiv(p2.Y-p1.Y, p2.X-p1.X)
	b := p1.Y - m*p1.X
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return Slope{M: 0, B: p1.Y}
	}
	return Slope{M: m, B: b}
}

// SlopeOf returns the line with slope m and constant b
func SlopeOf(m, b float64) Slope {
	return Slope{M: m, B: b}
}

// At returns y for the given x
func (s Slope) At(x float64) float64 {
	return s.M*x + s.B
}

// DistanceFrom returns the perpendicular distance from p to the line
// The perpendicular through p has slope -1/M (zero-guarded). For a horizontal
// line the guarded perpendicular is parallel, so the foot is taken straight
// below p at (p.X, B)
func (s Slope) DistanceFrom(p Point) float64 {
	if s.M == 0 {
		return finiteDistance(LengthBetween(p, Point{X: p.X, Y: s.B}))
	}
	mm := -SafeDiv(1, s.M)
	perp := Slope{M: mm, B: p.Y - mm*p.X}
	return finiteDistance(LengthBetween(p, s.IntersectionWith(perp)))
}

// finiteDistance reports an overflowed measurement as the largest finite distance
func finiteDistance(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return math.MaxFloat64
	}
	return d
}

// IntersectionWith returns the point where both lines meet
// Parallel lines divide to x = 0 rather than NaN
func (s Slope) IntersectionWith(other Slope) Point {
	x := SafeDiv(other.B-s.B, s.M-other.M)
	return Point{X: x, Y: s.At(x)}
}

// Contains reports whether p lies within eps of the line
func (s Slope) Contains(p Point, eps float64) bool {
	return s.DistanceFrom(p) <= eps
}

func (s Slope) String() string {
	return fmt.Sprintf("y = %gx + %g", s.M, s.B)
}
