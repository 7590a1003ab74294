package kino

import "math/bits"

// Fixed-point formats used throughout the engine. Each is a signed
// twos-complement integer with an implicit binary point:
//
//	Fixed16 — 16 bits, 3 fraction bits (12.3)
//	Fixed32 — 32 bits, 16 fraction bits (15.16)
//	Fixed64 — 64 bits, 32 fraction bits (31.32)
//
// A value decomposes as integer + fraction/2^p with the fraction always
// in [0, 2^p), even for negative values: -1.125 in Fixed16 is integer -2
// plus fraction 7/8.
//
// Arithmetic operates on the raw representation and wraps on overflow;
// there is no saturation. Callers that cannot tolerate wraparound must
// range-check their inputs.

// Fraction bit counts for each format.
const (
	Fixed16Precision = 3
	Fixed32Precision = 16
	Fixed64Precision = 32
)

// Fixed16 is a signed 12.3 fixed-point value. Draw-command point
// coordinates and stroke widths use this format.
type Fixed16 int16

// Fixed32 is a signed 15.16 fixed-point value. Duration fractions and
// other unit-interval parameters use this format.
type Fixed32 int32

// Fixed64 is a signed 31.32 fixed-point value used where intermediate
// precision matters, such as filter state.
type Fixed64 int64

// One in each format's raw representation.
const (
	Fixed16One Fixed16 = 1 << Fixed16Precision
	Fixed32One Fixed32 = 1 << Fixed32Precision
	Fixed64One Fixed64 = 1 << Fixed64Precision
)

// Fixed16FromInt converts an integer to Fixed16.
func Fixed16FromInt(v int) Fixed16 { return Fixed16(v << Fixed16Precision) }

// Fixed32FromInt converts an integer to Fixed32.
func Fixed32FromInt(v int) Fixed32 { return Fixed32(v << Fixed32Precision) }

// Fixed64FromInt converts an integer to Fixed64.
func Fixed64FromInt(v int) Fixed64 { return Fixed64(int64(v) << Fixed64Precision) }

// Fixed16FromFloat converts a float to Fixed16, truncating toward zero.
func Fixed16FromFloat(v float64) Fixed16 {
	return Fixed16(v * float64(Fixed16One))
}

// Fixed32FromFloat converts a float to Fixed32, truncating toward zero.
func Fixed32FromFloat(v float64) Fixed32 {
	return Fixed32(v * float64(Fixed32One))
}

// Fixed64FromFloat converts a float to Fixed64, truncating toward zero.
func Fixed64FromFloat(v float64) Fixed64 {
	return Fixed64(v * float64(Fixed64One))
}

// Float returns the value as a float64.
func (f Fixed16) Float() float64 { return float64(f) / float64(Fixed16One) }

// Float returns the value as a float64.
func (f Fixed32) Float() float64 { return float64(f) / float64(Fixed32One) }

// Float returns the value as a float64. Lossy for magnitudes beyond
// float64's 53-bit mantissa.
func (f Fixed64) Float() float64 { return float64(f) / float64(Fixed64One) }

// Integer returns the integer part, rounding toward negative infinity.
// Integer and Fraction together reconstruct the exact value.
func (f Fixed16) Integer() int { return int(f >> Fixed16Precision) }

// Fraction returns the fractional part as a non-negative raw offset in
// [0, 8).
func (f Fixed16) Fraction() int { return int(f & (Fixed16One - 1)) }

// Integer returns the integer part, rounding toward negative infinity.
func (f Fixed32) Integer() int { return int(f >> Fixed32Precision) }

// Fraction returns the fractional part as a non-negative raw offset in
// [0, 65536).
func (f Fixed32) Fraction() int { return int(f & (Fixed32One - 1)) }

// Integer returns the integer part, rounding toward negative infinity.
func (f Fixed64) Integer() int64 { return int64(f >> Fixed64Precision) }

// Fraction returns the fractional part as a non-negative raw offset in
// [0, 2^32).
func (f Fixed64) Fraction() int64 { return int64(f & (Fixed64One - 1)) }

// Add returns f + v with wrapping twos-complement semantics.
func (f Fixed16) Add(v Fixed16) Fixed16 { return f + v }

// Sub returns f - v with wrapping twos-complement semantics.
func (f Fixed16) Sub(v Fixed16) Fixed16 { return f - v }

// Mul returns f * v. The multiply widens to 32 bits before the
// arithmetic shift back down, so only the final result can wrap.
func (f Fixed16) Mul(v Fixed16) Fixed16 {
	return Fixed16(int32(f) * int32(v) >> Fixed16Precision)
}

// Add returns f + v with wrapping twos-complement semantics.
func (f Fixed32) Add(v Fixed32) Fixed32 { return f + v }

// Sub returns f - v with wrapping twos-complement semantics.
func (f Fixed32) Sub(v Fixed32) Fixed32 { return f - v }

// Mul returns f * v. The multiply widens to 64 bits before the
// arithmetic shift back down.
func (f Fixed32) Mul(v Fixed32) Fixed32 {
	return Fixed32(int64(f) * int64(v) >> Fixed32Precision)
}

// Mul16 is the mixed-format multiply Fixed32 × Fixed16 → Fixed32. The
// product shifts right by Fixed16's precision only, leaving the result
// in the receiver's format.
func (f Fixed32) Mul16(v Fixed16) Fixed32 {
	return Fixed32(int64(f) * int64(v) >> Fixed16Precision)
}

// Add returns f + v with wrapping twos-complement semantics.
func (f Fixed64) Add(v Fixed64) Fixed64 { return f + v }

// Sub returns f - v with wrapping twos-complement semantics.
func (f Fixed64) Sub(v Fixed64) Fixed64 { return f - v }

// Mul returns f * v using a full 128-bit intermediate product.
func (f Fixed64) Mul(v Fixed64) Fixed64 {
	hi, lo := bits.Mul64(uint64(f), uint64(v))
	// Correct the unsigned product for negative operands.
	if f < 0 {
		hi -= uint64(v)
	}
	if v < 0 {
		hi -= uint64(f)
	}
	return Fixed64(hi<<(64-Fixed64Precision) | lo>>Fixed64Precision)
}

// Round returns the nearest integer. Half a unit is added toward the
// raw value's sign before the truncating division, so ties round away
// from zero.
func (f Fixed16) Round() int {
	r := int(f)
	if r >= 0 {
		r += 1 << (Fixed16Precision - 1)
	} else {
		r -= 1 << (Fixed16Precision - 1)
	}
	return r / (1 << Fixed16Precision)
}

// Round returns the nearest integer, ties away from zero.
func (f Fixed32) Round() int {
	r := int(f)
	if r >= 0 {
		r += 1 << (Fixed32Precision - 1)
	} else {
		r -= 1 << (Fixed32Precision - 1)
	}
	return r / (1 << Fixed32Precision)
}

// Round returns the nearest integer, ties away from zero.
func (f Fixed64) Round() int64 {
	r := int64(f)
	if r >= 0 {
		r += 1 << (Fixed64Precision - 1)
	} else {
		r -= 1 << (Fixed64Precision - 1)
	}
	return r / (1 << Fixed64Precision)
}

// Filter is a direct-form I linear recursive (IIR) filter over Fixed64
// samples:
//
//	y[n] = b[0]·x[n] + b[1]·x[n-1] + ... - a[0]·y[n-1] - a[1]·y[n-2] - ...
//
// The leading denominator coefficient is normalized to one and omitted
// from a. A filter with empty a degenerates to an FIR filter.
type Filter struct {
	b, a []Fixed64
	x, y []Fixed64
}

// NewFilter creates a filter with the given numerator (b) and feedback
// (a) coefficients. The coefficient slices are not copied; callers
// should treat them as owned by the filter after this call.
func NewFilter(b, a []Fixed64) *Filter {
	return &Filter{
		b: b,
		a: a,
		x: make([]Fixed64, len(b)),
		y: make([]Fixed64, len(a)),
	}
}

// Reset clears the filter's input and output history.
func (f *Filter) Reset() {
	clear(f.x)
	clear(f.y)
}

// Update feeds one sample through the filter and returns the output.
func (f *Filter) Update(in Fixed64) Fixed64 {
	// Shift input history.
	copy(f.x[1:], f.x)
	if len(f.x) > 0 {
		f.x[0] = in
	}

	var out Fixed64
	for i, c := range f.b {
		out = out.Add(c.Mul(f.x[i]))
	}
	for i, c := range f.a {
		out = out.Sub(c.Mul(f.y[i]))
	}

	// Shift output history.
	copy(f.y[1:], f.y)
	if len(f.y) > 0 {
		f.y[0] = out
	}
	return out
}
