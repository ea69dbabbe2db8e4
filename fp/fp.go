// Package fp implements the fixed-point scalar and vector arithmetic
// the core uses in place of floating point, so that turn resolution is
// bit-identical across platforms.
package fp

import "math"

// Scale is the fixed scaling factor: one unit of real value is this
// many Scalar units.
const Scale = 1000

// Scalar is a fixed-point number: a real value r is represented as
// round(r * Scale).
type Scalar int64

// Zero is the additive identity.
const Zero Scalar = 0

// FromFloat converts a float64 to a Scalar, rounding half away from zero.
func FromFloat(r float64) Scalar {
	return Scalar(roundHalfAwayFromZero(r * Scale))
}

// FromInt converts a plain integer to a Scalar.
func FromInt(n int64) Scalar {
	return Scalar(n * Scale)
}

// ToFloat converts a Scalar back to a float64.
func (s Scalar) ToFloat() float64 {
	return float64(s) / Scale
}

func roundHalfAwayFromZero(v float64) int64 {
	if v >= 0 {
		return int64(math.Floor(v + 0.5))
	}
	return int64(math.Ceil(v - 0.5))
}

// Add returns a + b. Addition never loses precision, so it never rounds.
func Add(a, b Scalar) Scalar {
	return a + b
}

// Sub returns a - b.
func Sub(a, b Scalar) Scalar {
	return a - b
}

// Mul returns a * b, rescaled back down by Scale. The product is
// formed in int64 and divided once, rounding half away from zero, so
// the result is identical on every platform for inputs within
// [-2^53, 2^53].
func Mul(a, b Scalar) Scalar {
	product := int64(a) * int64(b)
	return Scalar(divRoundHalfAwayFromZero(product, Scale))
}

// Div returns a / b, prescaled up by Scale before the quotient is
// taken. Division by zero saturates rather than faulting: it returns
// the maximum representable magnitude with the sign a would have
// produced (positive if a >= 0, negative otherwise).
func Div(a, b Scalar) Scalar {
	if b == 0 {
		if a < 0 {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	numerator := int64(a) * Scale
	return Scalar(divRoundHalfAwayFromZero(numerator, int64(b)))
}

func divRoundHalfAwayFromZero(numerator, denominator int64) int64 {
	quotient := numerator / denominator
	remainder := numerator % denominator
	if remainder == 0 {
		return quotient
	}
	// Round half away from zero: compare 2*|remainder| to |denominator|.
	doubled := remainder * 2
	if doubled < 0 {
		doubled = -doubled
	}
	absDenom := denominator
	if absDenom < 0 {
		absDenom = -absDenom
	}
	if doubled >= absDenom {
		if (numerator < 0) != (denominator < 0) {
			quotient--
		} else {
			quotient++
		}
	}
	return quotient
}

// Clamp restricts v to the inclusive range [lo, hi].
func Clamp(v, lo, hi Scalar) Scalar {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min returns the smaller of a and b.
func Min(a, b Scalar) Scalar {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Scalar) Scalar {
	if a > b {
		return a
	}
	return b
}

// Abs returns the absolute value of v.
func Abs(v Scalar) Scalar {
	if v < 0 {
		return -v
	}
	return v
}

// Sqrt returns the fixed-point square root of v via a float64 bridge,
// snapped back to Scalar by rounding. Negative inputs return 0.
func Sqrt(v Scalar) Scalar {
	if v <= 0 {
		return 0
	}
	// v is already scaled by Scale; sqrt(v/Scale) * Scale = sqrt(v*Scale).
	return FromFloat(math.Sqrt(v.ToFloat()))
}

// CosDeg returns cos(degrees) as a Scalar, degrees given as a Scalar
// of fixed-point degrees.
func CosDeg(degrees Scalar) Scalar {
	return FromFloat(math.Cos(degrees.ToFloat() * math.Pi / 180))
}

// SinDeg returns sin(degrees) as a Scalar, degrees given as a Scalar
// of fixed-point degrees.
func SinDeg(degrees Scalar) Scalar {
	return FromFloat(math.Sin(degrees.ToFloat() * math.Pi / 180))
}
