// Package fixed implements the Q8.8 scaled integers used by the synth and the
// breath generator. A Q8.8 value stores x*256 in 16 bits: the high byte is the
// integer part, the low byte the fraction.
package fixed

// Shift is the number of fractional bits.
const Shift = 8

// One is 1.0 in Q8.8.
const One = 1 << Shift

// Q8_8 is an unsigned Q8.8 value.
type Q8_8 uint16

// SQ8_8 is a signed Q8.8 value. The sign is meaningful on its own, e.g. as a
// direction.
type SQ8_8 int16

// MaxSQ8_8 is the largest positive SQ8_8.
const MaxSQ8_8 = 0x7FFF

// FromInt returns n as a Q8.8 value. Only the low byte of n is kept.
func FromInt(n uint8) Q8_8 {
	return Q8_8(uint16(n) << Shift)
}

// Int returns the integer part (the high byte).
func (q Q8_8) Int() uint8 {
	return uint8(q >> Shift)
}

// Frac returns the fractional part (the low byte).
func (q Q8_8) Frac() uint8 {
	return uint8(q)
}

// Abs returns the magnitude of s as an unsigned Q8.8 value.
func (s SQ8_8) Abs() Q8_8 {
	if s < 0 {
		return Q8_8(-int32(s))
	}
	return Q8_8(s)
}

// Negative reports whether s points downwards.
func (s SQ8_8) Negative() bool {
	return s < 0
}

// WithSign returns mag with the sign of s. Zero counts as positive.
func (s SQ8_8) WithSign(mag Q8_8) SQ8_8 {
	if mag > MaxSQ8_8 {
		mag = MaxSQ8_8
	}
	if s < 0 {
		return -SQ8_8(mag)
	}
	return SQ8_8(mag)
}

// CeilDiv returns ceil(num/den). den must not be zero.
func CeilDiv(num, den uint32) uint32 {
	return (num + den - 1) / den
}

// RoundDiv returns num/den rounded half up. den must not be zero.
func RoundDiv(num, den uint32) uint32 {
	return (num + den/2) / den
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
