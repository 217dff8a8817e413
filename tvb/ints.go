package tvb

import "encoding/binary"

// GetU8 reads the single byte at offset.
func (b *Buffer) GetU8(offset int64) (uint8, error) {
	data, err := fetch(b, "get_u8", offset, 1)
	if err != nil {
		return 0, err
	}
	return data[0], nil
}

// GetU16BE reads a big-endian (network order) 16-bit unsigned integer.
func (b *Buffer) GetU16BE(offset int64) (uint16, error) {
	data, err := fetch(b, "get_u16_be", offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(data), nil
}

// GetU16LE reads a little-endian 16-bit unsigned integer.
func (b *Buffer) GetU16LE(offset int64) (uint16, error) {
	data, err := fetch(b, "get_u16_le", offset, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(data), nil
}

// GetU24BE reads a big-endian 24-bit unsigned integer, zero-extended into
// a uint32.
func (b *Buffer) GetU24BE(offset int64) (uint32, error) {
	data, err := fetch(b, "get_u24_be", offset, 3)
	if err != nil {
		return 0, err
	}
	return uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2]), nil
}

// GetU24LE reads a little-endian 24-bit unsigned integer, zero-extended
// into a uint32.
func (b *Buffer) GetU24LE(offset int64) (uint32, error) {
	data, err := fetch(b, "get_u24_le", offset, 3)
	if err != nil {
		return 0, err
	}
	return uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16, nil
}

// GetU32BE reads a big-endian 32-bit unsigned integer.
func (b *Buffer) GetU32BE(offset int64) (uint32, error) {
	data, err := fetch(b, "get_u32_be", offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(data), nil
}

// GetU32LE reads a little-endian 32-bit unsigned integer.
func (b *Buffer) GetU32LE(offset int64) (uint32, error) {
	data, err := fetch(b, "get_u32_le", offset, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(data), nil
}

// GetU64BE reads a big-endian 64-bit unsigned integer.
func (b *Buffer) GetU64BE(offset int64) (uint64, error) {
	data, err := fetch(b, "get_u64_be", offset, 8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(data), nil
}

// GetU64LE reads a little-endian 64-bit unsigned integer.
func (b *Buffer) GetU64LE(offset int64) (uint64, error) {
	data, err := fetch(b, "get_u64_le", offset, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(data), nil
}

// fetch is the shared bounds-check-then-resolve path every fixed-width
// accessor uses: normalize, then take the fast path when the buffer
// already exposes a direct pointer and the read is small (<= 8 bytes),
// falling back to the general contiguity resolver otherwise (spec.md
// §4.4's "fast" variant).
func fetch(b *Buffer, op string, offset int64, length int) ([]byte, error) {
	ao, al, err := normalize(b, op, offset, int64(length))
	if err != nil {
		return nil, err
	}
	if length <= 8 && b.direct != nil {
		data, ferr := resolveFast(b, op, int(ao), int(al))
		if ferr != nil {
			return nil, ferr
		}
		return data, nil
	}
	data, rerr := resolve(b, op, ao, al)
	if rerr != nil {
		return nil, rerr
	}
	return data, nil
}
