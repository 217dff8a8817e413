package tvb

// GetBits reads a big-endian-ordered, MSB-first bit-field of width bits
// (1-64) starting at bitOffset. The byte-aligned offset is
// bitOffset >> 3; the intra-byte bit offset is bitOffset & 7. The
// smallest number of whole octets (1, 2, 4, 8, or 9) covering the
// requested span is read, the leading intra-byte bits are masked off,
// and the result is right-shifted flush. Widths outside 1-64 are a
// programmer-contract violation, not a bounds error, and abort.
//
// The bit-accumulation loop below is the same shape as
// thebagchi-asn1c-go's bitbuffer.Codec.Read slow path: walk bytes,
// consuming min(remaining, bitsLeftInByte) bits at a time.
func (b *Buffer) GetBits(bitOffset int64, width uint8) (uint64, error) {
	if bitOffset < 0 {
		abort("get_bits", "negative bit offset %d", bitOffset)
	}
	if width == 0 || width > 64 {
		abort("get_bits", "width %d out of range 1-64", width)
	}

	octetOffset := bitOffset >> 3
	intra := uint(bitOffset & 7)
	totalBits := int64(intra) + int64(width)

	var octets int
	switch {
	case totalBits <= 8:
		octets = 1
	case totalBits <= 16:
		octets = 2
	case totalBits <= 32:
		octets = 4
	case totalBits <= 64:
		octets = 8
	default:
		octets = 9
	}

	raw, err := fetch(b, "get_bits", octetOffset, octets)
	if err != nil {
		return 0, err
	}
	return extractBits(raw, intra, uint(width)), nil
}

// extractBits reads width bits, MSB-first, starting bit intra into raw.
func extractBits(raw []byte, intra, width uint) uint64 {
	var result uint64
	remaining := width
	byteIdx := 0
	bitInByte := intra
	for remaining > 0 {
		available := 8 - bitInByte
		take := remaining
		if take > available {
			take = available
		}
		shift := available - take
		mask := byte((1 << take) - 1)
		chunk := (raw[byteIdx] >> shift) & mask
		result = (result << take) | uint64(chunk)
		remaining -= take
		bitInByte += take
		if bitInByte == 8 {
			bitInByte = 0
			byteIdx++
		}
	}
	return result
}

func requireBitWidth(op string, width, max uint8) {
	if width == 0 || width > max {
		abort(op, "width %d out of range 1-%d", width, max)
	}
}

// GetBits8 reads a bit-field of 1-8 bits.
func (b *Buffer) GetBits8(bitOffset int64, width uint8) (uint8, error) {
	requireBitWidth("get_bits8", width, 8)
	v, err := b.GetBits(bitOffset, width)
	return uint8(v), err
}

// GetBits16 reads a bit-field of 1-16 bits.
func (b *Buffer) GetBits16(bitOffset int64, width uint8) (uint16, error) {
	requireBitWidth("get_bits16", width, 16)
	v, err := b.GetBits(bitOffset, width)
	return uint16(v), err
}

// GetBits32 reads a bit-field of 1-32 bits.
func (b *Buffer) GetBits32(bitOffset int64, width uint8) (uint32, error) {
	requireBitWidth("get_bits32", width, 32)
	v, err := b.GetBits(bitOffset, width)
	return uint32(v), err
}

// GetBits64 reads a bit-field of 1-64 bits.
func (b *Buffer) GetBits64(bitOffset int64, width uint8) (uint64, error) {
	requireBitWidth("get_bits64", width, 64)
	return b.GetBits(bitOffset, width)
}

// GetBitsLE would read a little-endian-ordered bit-field; it is not
// implemented (spec.md §4.5: "Little-endian bit ordering is not
// implemented and must raise") and always aborts.
func (b *Buffer) GetBitsLE(bitOffset int64, width uint8) (uint64, error) {
	abort("get_bits_le", "little-endian bit ordering is not implemented")
	return 0, nil
}
