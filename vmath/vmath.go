package vmath

import (
	"math"
	"math/bits"
)

// Q32.32 Fixed Point constants
const (
	Shift  = 32
	Scale  = 1 << Shift
	ScaleF = float64(Scale)
	Half   = 1 << (Shift - 1)
)

// --- Float guards ---

// SafeDiv returns a/b, or 0 when b is zero or the quotient is not finite
// Degenerate slope math collapses to 0 instead of producing NaN/Inf
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return Finite(a / b)
}

// Finite returns f, or 0 for NaN and ±Inf
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// --- Fixed-point arithmetic ---

func FromInt(i int) int64     { return int64(i << Shift) }
func ToInt(f int64) int       { return int(f >> Shift) }
func ToFloat(f int64) float64 { return float64(f) / Scale }

// FromFloat converts to Q32.32, saturating outside the representable range
// NaN converts to 0
func FromFloat(f float64) int64 {
	v := f * Scale
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	result := int64((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

// Div divides in Q32.32, returns 0 for zero divisor and saturates on overflow
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi := ua >> 32
	lo := ua << 32

	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

// Abs returns absolute value
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sqrt returns Q32.32 square root
// Goes through float64; impulse magnitudes exceed the range where Newton-Raphson on Q32.32 converges quickly
func Sqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}
	return FromFloat(math.Sqrt(ToFloat(x)))
}
