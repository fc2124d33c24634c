package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func closeTo(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// analyticDistance is |m*x - y + b| / sqrt(1 + m²)
func analyticDistance(s Slope, p Point) float64 {
	return math.Abs(s.M*p.X-p.Y+s.B) / math.Sqrt(1+s.M*s.M)
}

func TestNewSlope(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		m, b   float64
	}{
		{"diagonal through origin", Pt(0, 0), Pt(10, 10), 1, 0},
		{"horizontal", Pt(-3, 4), Pt(7, 4), 0, 4},
		{"offset", Pt(1, 5), Pt(3, 9), 2, 3},
		{"negative", Pt(0, 2), Pt(4, 0), -0.5, 2},
		{"vertical collapses to zero slope", Pt(5, 0), Pt(5, 50), 0, 0},
		{"identical points", Pt(2, 3), Pt(2, 3), 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSlope(tt.p1, tt.p2)
			if math.IsNaN(s.M) || math.IsInf(s.M, 0) || math.IsNaN(s.B) || math.IsInf(s.B, 0) {
				t.Fatalf("NewSlope(%v, %v) produced non-finite %v", tt.p1, tt.p2, s)
			}
			if !closeTo(s.M, tt.m) || !closeTo(s.B, tt.b) {
				t.Errorf("NewSlope(%v, %v) = %v, want m=%g b=%g", tt.p1, tt.p2, s, tt.m, tt.b)
			}
		})
	}
}

func TestSlopeOf(t *testing.T) {
	s := SlopeOf(3, -1)
	if s.M != 3 || s.B != -1 {
		t.Errorf("SlopeOf(3, -1) = %v", s)
	}
	if got := s.At(2); got != 5 {
		t.Errorf("At(2) = %g, want 5", got)
	}
}

func TestDistanceFrom_PointOnLine(t *testing.T) {
	lines := []struct {
		p1, p2 Point
	}{
		{Pt(0, 0), Pt(100, 0)},
		{Pt(0, 0), Pt(5, 50)},
		{Pt(-10, 3), Pt(20, -12)},
		{Pt(1, 1), Pt(2, 2)},
	}

	for _, l := range lines {
		s := NewSlope(l.p1, l.p2)
		for _, x := range []float64{-50, -1, 0, 0.5, 13, 200} {
			p := Pt(x, s.At(x))
			if d := s.DistanceFrom(p); d > 1e-6 {
				t.Errorf("line %v: DistanceFrom(%v) = %g, want 0", s, p, d)
			}
		}
		// Defining points lie on the line
		if d := s.DistanceFrom(l.p2); d > 1e-6 {
			t.Errorf("line %v: DistanceFrom(p2 %v) = %g, want 0", s, l.p2, d)
		}
	}
}

func TestDistanceFrom_PointOffLine(t *testing.T) {
	tests := []struct {
		name string
		s    Slope
		p    Point
	}{
		{"horizontal above", SlopeOf(0, 0), Pt(7, 50)},
		{"horizontal below", SlopeOf(0, 2), Pt(-4, -8)},
		{"steep", SlopeOf(10, 0), Pt(5, 0)},
		{"shallow", SlopeOf(0.25, 1), Pt(3, 9)},
		{"negative", SlopeOf(-2, 5), Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.s.DistanceFrom(tt.p)
			if got <= 0 {
				t.Fatalf("DistanceFrom(%v) = %g, want positive", tt.p, got)
			}
			if want := analyticDistance(tt.s, tt.p); !closeTo(got, want) {
				t.Errorf("DistanceFrom(%v) = %g, want %g", tt.p, got, want)
			}
		})
	}
}

func TestDistanceFrom_ReflectionSymmetry(t *testing.T) {
	lines := []Slope{
		NewSlope(Pt(0, 0), Pt(10, 3)),
		NewSlope(Pt(-5, 2), Pt(5, -8)),
		NewSlope(Pt(0, 4), Pt(9, 4)),
	}
	points := []Point{Pt(1, 7), Pt(-3, -3), Pt(12, 0), Pt(0.5, 40)}

	for _, s := range lines {
		for _, p := range points {
			// Foot of perpendicular computed independently of DistanceFrom
			fx := (p.X + s.M*(p.Y-s.B)) / (1 + s.M*s.M)
			foot := Pt(fx, s.At(fx))
			mirror := Pt(2*foot.X-p.X, 2*foot.Y-p.Y)

			d1 := s.DistanceFrom(p)
			d2 := s.DistanceFrom(mirror)
			if math.Abs(d1-d2) > 1e-6 {
				t.Errorf("line %v: DistanceFrom(%v)=%g, mirror %v=%g", s, p, d1, mirror, d2)
			}
		}
	}
}

func TestDistanceFrom_VerticalInputNeverNaN(t *testing.T) {
	s := NewSlope(Pt(3, 0), Pt(3, 90))
	for _, p := range []Point{Pt(3, 90), Pt(3, 0), Pt(-2, 4), Pt(0, 0)} {
		d := s.DistanceFrom(p)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			t.Errorf("DistanceFrom(%v) on degenerate line = %g", p, d)
		}
	}
}

func TestIntersectionWith(t *testing.T) {
	a := SlopeOf(1, 0)
	b := SlopeOf(-1, 4)
	got := a.IntersectionWith(b)
	if !closeTo(got.X, 2) || !closeTo(got.Y, 2) {
		t.Errorf("IntersectionWith = %v, want (2, 2)", got)
	}

	// Symmetric in argument order
	back := b.IntersectionWith(a)
	if !closeTo(back.X, got.X) || !closeTo(back.Y, got.Y) {
		t.Errorf("reverse IntersectionWith = %v, want %v", back, got)
	}

	// Parallel lines divide to zero instead of NaN
	p := SlopeOf(2, 1).IntersectionWith(SlopeOf(2, 7))
	if p.X != 0 || p.Y != 1 {
		t.Errorf("parallel IntersectionWith = %v, want (0, 1)", p)
	}
}

func TestContains(t *testing.T) {
	s := NewSlope(Pt(0, 0), Pt(4, 2))
	if !s.Contains(Pt(8, 4), 1e-9) {
		t.Error("expected (8, 4) on line")
	}
	if s.Contains(Pt(8, 6), 1) {
		t.Error("expected (8, 6) off line by more than 1")
	}
}

func TestLengthBetween(t *testing.T) {
	if got := LengthBetween(Pt(0, 0), Pt(3, 4)); got != 5 {
		t.Errorf("LengthBetween = %g, want 5", got)
	}
	if got := Pt(1, 1).DistanceTo(Pt(1, 1)); got != 0 {
		t.Errorf("DistanceTo self = %g, want 0", got)
	}
	if got := Pt(4, 6).Sub(Pt(1, 2)).Length(); got != 5 {
		t.Errorf("Sub().Length() = %g, want 5", got)
	}
}

func TestSafeDiv(t *testing.T) {
	if got := SafeDiv(1, 0); got != 0 {
		t.Errorf("SafeDiv(1, 0) = %g, want 0", got)
	}
	if got := SafeDiv(9, 3); got != 3 {
		t.Errorf("SafeDiv(9, 3) = %g, want 3", got)
	}
}

func TestNewSlope_DenormalRunStaysFinite(t *testing.T) {
	s := NewSlope(Pt(0, 0), Pt(5e-324, 1))
	for _, v := range []float64{s.M, s.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("NewSlope = %v, want finite coefficients", s)
		}
	}
	for _, p := range []Point{Pt(5e-324, 1), Pt(0, 0), Pt(-7, 3)} {
		d := s.DistanceFrom(p)
		if math.IsNaN(d) || math.IsInf(d, 0) {
			t.Errorf("DistanceFrom(%v) = %g, want finite", p, d)
		}
	}

	// Steep but finite slope with a huge intercept
	huge := NewSlope(Pt(1e300, 0), Pt(1e300+1e285, 1e300))
	if math.IsNaN(huge.B) || math.IsInf(huge.B, 0) {
		t.Errorf("NewSlope = %v, want finite intercept", huge)
	}
}

func TestSafeDiv_NonFiniteQuotient(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
	}{
		{"denormal divisor", 1, 5e-324},
		{"overflow", math.MaxFloat64, 0.5},
		{"nan numerator", math.NaN(), 2},
		{"inf numerator", math.Inf(1), 2},
	}
	for _, tt := range tests {
		if got := SafeDiv(tt.a, tt.b); got != 0 {
			t.Errorf("%s: SafeDiv(%g, %g) = %g, want 0", tt.name, tt.a, tt.b, got)
		}
	}
}
