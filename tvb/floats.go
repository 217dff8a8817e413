package tvb

import (
	"encoding/binary"
	"math"
)

// GetF32BE reads a big-endian IEEE-754 single-precision float.
func (b *Buffer) GetF32BE(offset int64) (float32, error) {
	data, err := fetch(b, "get_f32_be", offset, 4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.BigEndian.Uint32(data)), nil
}

// GetF32LE reads a little-endian IEEE-754 single-precision float.
func (b *Buffer) GetF32LE(offset int64) (float32, error) {
	data, err := fetch(b, "get_f32_le", offset, 4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(data)), nil
}

// GetF64BE reads a big-endian IEEE-754 double-precision float.
func (b *Buffer) GetF64BE(offset int64) (float64, error) {
	data, err := fetch(b, "get_f64_be", offset, 8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(data)), nil
}

// GetF64LE reads a little-endian IEEE-754 double-precision float.
func (b *Buffer) GetF64LE(offset int64) (float64, error) {
	data, err := fetch(b, "get_f64_le", offset, 8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(data)), nil
}

// PortableF32 decodes a 32-bit IEEE-754 float by extracting its
// sign/exponent/mantissa bit-fields and recomputing the value, rather
// than reinterpreting the bit pattern directly. Go's runtime is always
// IEEE-754-native, so GetF32BE/LE never need this path themselves; it
// exists so the portable decomposition spec.md §4.5 describes is
// implemented and tested, for hosts or wire formats that only hand you
// the three fields separately.
func PortableF32(bits uint32) float32 {
	sign := bits >> 31
	exponent := int32((bits>>23)&0xff) - 127
	mantissa := bits & 0x7fffff

	if exponent == -127 && mantissa == 0 {
		if sign == 1 {
			return float32(math.Copysign(0, -1))
		}
		return 0
	}

	if exponent == 128 {
		if mantissa != 0 {
			return float32(math.NaN())
		}
		return float32(math.Inf(1 - 2*int(sign)))
	}

	frac := 1.0 + float64(mantissa)/float64(1<<23)
	if exponent == -127 {
		// Subnormal: no implicit leading 1, fixed exponent -126.
		frac = float64(mantissa) / float64(1<<23)
		exponent = -126
	}
	value := frac * math.Pow(2, float64(exponent))
	if sign == 1 {
		value = -value
	}
	return float32(value)
}

// PortableF64 is PortableF32's double-precision counterpart.
func PortableF64(bits uint64) float64 {
	sign := bits >> 63
	exponent := int64((bits>>52)&0x7ff) - 1023
	mantissa := bits & 0xfffffffffffff

	if exponent == -1023 && mantissa == 0 {
		if sign == 1 {
			return math.Copysign(0, -1)
		}
		return 0
	}

	if exponent == 1024 {
		if mantissa != 0 {
			return math.NaN()
		}
		return math.Inf(1 - 2*int(sign))
	}

	frac := 1.0 + float64(mantissa)/float64(uint64(1)<<52)
	if exponent == -1023 {
		// Subnormal: no implicit leading 1, fixed exponent -1022.
		frac = float64(mantissa) / float64(uint64(1)<<52)
		exponent = -1022
	}
	value := frac * math.Pow(2, float64(exponent))
	if sign == 1 {
		value = -value
	}
	return value
}
