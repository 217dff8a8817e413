package tvb

// Strsize returns the length, including the terminating NUL, of the
// NUL-terminated string starting at offset. If no NUL is found before
// the buffer ends, it raises the same Kind a byte read at that offset
// would: CapturedBounds if the NUL would have fallen within the
// reported-but-not-captured region, ReportedBounds otherwise.
func (b *Buffer) Strsize(offset int64) (int64, error) {
	var n int64
	for {
		v, err := b.GetU8(offset + n)
		if err != nil {
			return 0, err
		}
		n++
		if v == 0 {
			return n, nil
		}
	}
}

// Strnlen is the no-exception counterpart to Strsize: it scans at most
// maxLength bytes from offset for a NUL terminator and returns the
// length of the string excluding the terminator, or -1 if no
// terminator is found within maxLength bytes or before captured data
// ends, whichever comes first. It never raises.
func (b *Buffer) Strnlen(offset, maxLength int64) int64 {
	for i := int64(0); i < maxLength; i++ {
		if !b.OffsetExists(offset + i) {
			return -1
		}
		v, err := b.GetU8(offset + i)
		if err != nil {
			return -1
		}
		if v == 0 {
			return i
		}
	}
	return -1
}

// GetString copies length raw bytes starting at offset into a new Go
// string. It performs no NUL handling; callers that know a field's
// width but not its termination style use this.
func (b *Buffer) GetString(offset, length int64) (string, error) {
	data, err := b.GetPtr(offset, length)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetStringz reads a NUL-terminated string starting at offset. It
// returns the string (excluding the terminator) and the total number
// of bytes consumed from the buffer, including the terminator.
func (b *Buffer) GetStringz(offset int64) (string, int64, error) {
	n, err := b.Strsize(offset)
	if err != nil {
		return "", 0, err
	}
	if n == 1 {
		return "", 1, nil
	}
	data, err := b.GetPtr(offset, n-1)
	if err != nil {
		return "", 0, err
	}
	return string(data), n, nil
}

// GetNStringz reads at most maxLength bytes starting at offset looking
// for a NUL terminator. If one is found within that span, it behaves
// like GetStringz and terminated is true. If none is found, it returns
// all maxLength bytes as the string, consumed equals maxLength, and
// terminated is false.
func (b *Buffer) GetNStringz(offset, maxLength int64) (s string, consumed int64, terminated bool, err error) {
	n := b.Strnlen(offset, maxLength)
	if n < 0 {
		data, gerr := b.GetPtr(offset, maxLength)
		if gerr != nil {
			return "", 0, false, gerr
		}
		return string(data), maxLength, false, nil
	}
	data, gerr := b.GetPtr(offset, n)
	if gerr != nil {
		return "", 0, false, gerr
	}
	return string(data), n + 1, true, nil
}

// GetNStringz0 is GetNStringz's allocator-aware counterpart: instead of
// returning a Go string (always a heap copy), it materializes the raw
// bytes — NUL-terminated, padding the allocation with a trailing 0x00
// whether or not one was found on the wire — into alloc's storage, and
// returns that slice alongside the same consumed/terminated bookkeeping.
func (b *Buffer) GetNStringz0(offset, maxLength int64, alloc Allocator) (data []byte, consumed int64, terminated bool, err error) {
	n := b.Strnlen(offset, maxLength)
	if n < 0 {
		raw, gerr := b.GetPtr(offset, maxLength)
		if gerr != nil {
			return nil, 0, false, gerr
		}
		out := alloc.Allocate(maxLength + 1)
		copy(out, raw)
		out[maxLength] = 0
		return out, maxLength, false, nil
	}
	raw, gerr := b.GetPtr(offset, n)
	if gerr != nil {
		return nil, 0, false, gerr
	}
	out := alloc.Allocate(n + 1)
	copy(out, raw)
	out[n] = 0
	return out, n + 1, true, nil
}

// MemcpyInto copies length bytes starting at offset into target, which
// must be at least length bytes long. It returns the number of bytes
// copied, which is always length on success.
func (b *Buffer) MemcpyInto(target []byte, offset, length int64) (int, error) {
	data, err := b.GetPtr(offset, length)
	if err != nil {
		return 0, err
	}
	return copy(target, data), nil
}

// Memdup copies length bytes starting at offset into storage obtained
// from alloc and returns it. Unlike GetString it performs no NUL
// handling, mirroring the wire-format-agnostic memdup entry point
// spec.md §6 lists alongside get_string's three allocator variants.
func (b *Buffer) Memdup(offset, length int64, alloc Allocator) ([]byte, error) {
	data, err := b.GetPtr(offset, length)
	if err != nil {
		return nil, err
	}
	out := alloc.Allocate(int(length))
	copy(out, data)
	return out, nil
}

// GetStringAlloc is GetString's allocator-aware counterpart: it copies
// length raw bytes into alloc's storage and appends a trailing NUL,
// matching spec.md §4.6's get_string contract ("allocate L+1 bytes,
// copy, append a zero terminator") rather than GetString's
// always-heap Go-string shortcut.
func (b *Buffer) GetStringAlloc(offset, length int64, alloc Allocator) ([]byte, error) {
	data, err := b.GetPtr(offset, length)
	if err != nil {
		return nil, err
	}
	out := alloc.Allocate(int(length) + 1)
	copy(out, data)
	out[length] = 0
	return out, nil
}

// GetStringzAlloc is GetStringz's allocator-aware counterpart: the
// length is discovered via Strsize, then the bytes (excluding the
// terminator) plus a fresh trailing NUL are copied into alloc's
// storage. It returns the same consumed-byte count GetStringz does.
func (b *Buffer) GetStringzAlloc(offset int64, alloc Allocator) ([]byte, int64, error) {
	n, err := b.Strsize(offset)
	if err != nil {
		return nil, 0, err
	}
	if n == 1 {
		out := alloc.Allocate(1)
		out[0] = 0
		return out, 1, nil
	}
	data, err := b.GetPtr(offset, n-1)
	if err != nil {
		return nil, 0, err
	}
	out := alloc.Allocate(int(n))
	copy(out, data)
	out[n-1] = 0
	return out, n, nil
}

// FakeUnicode reads wordCount 16-bit code units (big- or little-endian
// per littleEndian) starting at offset and renders each one as a single
// raw byte if it is < 256, or '.' otherwise, then appends a trailing
// zero terminator. It is "fake" precisely because it is not a real
// UTF-16 decode — multi-byte code points collapse to a placeholder
// rather than being transcoded — matching spec.md §4.6/§9's round-trip
// law: fake_unicode of [0x41, 0x00] little-endian with wordCount=1
// yields the bytes ['A', 0]. Bounds are checked as 2*wordCount bytes
// up front.
func (b *Buffer) FakeUnicode(offset, wordCount int64, littleEndian bool) (string, error) {
	data, err := b.GetPtr(offset, wordCount*2)
	if err != nil {
		return "", err
	}
	out := make([]byte, wordCount+1)
	for i := int64(0); i < wordCount; i++ {
		var unit uint16
		if littleEndian {
			unit = uint16(data[2*i]) | uint16(data[2*i+1])<<8
		} else {
			unit = uint16(data[2*i])<<8 | uint16(data[2*i+1])
		}
		if unit < 256 {
			out[i] = byte(unit)
		} else {
			out[i] = '.'
		}
	}
	out[wordCount] = 0
	return string(out), nil
}
