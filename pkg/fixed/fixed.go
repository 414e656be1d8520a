// Package fixed converts the fixed point numbers found in color profile tags to and from
// floating point.
package fixed

import "math"

// S15Fixed16 is a signed 32 bit number with 16 integer and 16 fractional bits.
type S15Fixed16 int32

// U8Fixed8 is an unsigned 16 bit number with 8 integer and 8 fractional bits.
type U8Fixed8 uint16

// S15Fixed16ToFloat64 decodes v by sign and magnitude.
func S15Fixed16ToFloat64(v S15Fixed16) float64 {
	sign := 1.0
	if v < 0 {
		sign = -1
		v = -v
	}
	// -math.MinInt32 overflows back to itself; read as unsigned it is still the right magnitude.
	u := uint32(v)
	whole := float64(u >> 16)
	frac := float64(u&0xffff) / 65536.0

	return sign * (whole + frac)
}

// Float64ToS15Fixed16 encodes v rounding to the nearest representable value.
func Float64ToS15Fixed16(v float64) S15Fixed16 {
	return S15Fixed16(int32(math.Floor(v*65536.0 + 0.5)))
}

// U8Fixed8ToFloat64 decodes v.
func U8Fixed8ToFloat64(v U8Fixed8) float64 {
	lsb := v & 0xff
	msb := v >> 8

	return float64(msb) + float64(lsb)/256.0
}

// Float64ToU8Fixed8 encodes v rounding to the nearest representable value.
func Float64ToU8Fixed8(v float64) U8Fixed8 {
	return U8Fixed8((Float64ToS15Fixed16(v) >> 8) & 0xffff)
}
