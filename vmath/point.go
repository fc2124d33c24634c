package vmath

import (
	"fmt"
	"math"
)

// Point is a 2D position in view coordinates
type Point struct {
	X, Y float64
}

// Vector is a 2D displacement, derived from two points
type Vector struct {
	DX, DY float64
}

// Pt is shorthand for Point{x, y}
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the vector from q to p
func (p Point) Sub(q Point) Vector {
	return Vector{DX: p.X - q.X, DY: p.Y - q.Y}
}

// DistanceTo returns the Euclidean distance between p and q
func (p Point) DistanceTo(q Point) float64 {
	return LengthBetween(p, q)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Length returns the Euclidean magnitude sqrt(dx² + dy²)
func (v Vector) Length() float64 {
	return math.Sqrt(v.DX*v.DX + v.DY*v.DY)
}

func (v Vector) String() string {
	return fmt.Sprintf("(dx: %g, dy: %g)", v.DX, v.DY)
}

// LengthBetween returns the Euclidean length between two points
func LengthBetween(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}
