package tvb

// InitialFlattenCapacity is the minimum capacity pre-reserved when
// flattening a Composite, to avoid repeated small growth for composites
// whose member count is known but whose total length was already
// computed at Finalize time (so this mostly exists as a documented knob,
// not a growth strategy — Finalize already knows the exact total).
var InitialFlattenCapacity = 64

// resolve returns a byte slice of length absLength starting at absOffset
// within b, materializing a Composite's bytes into a cached contiguous
// array if the requested range straddles a member boundary (spec.md
// §4.4). offset/length must already be validated absolute values (call
// normalize first).
func resolve(b *Buffer, op string, absOffset, absLength int64) ([]byte, *Error) {
	if b.direct != nil {
		return b.direct[absOffset : absOffset+absLength], nil
	}

	switch b.kind {
	case realKind:
		// Invariant 3: a Real always has a direct pointer; this is
		// unreachable.
		abort(op, "real buffer without a direct byte pointer")
		return nil, nil

	case subsetKind:
		return resolve(b.backing, op, b.backingOffset+absOffset, absLength)

	case compositeKind:
		if !b.finalized {
			abort(op, "composite is not finalized")
		}
		if absLength == 0 {
			return nil, nil
		}
		idx := b.memberContaining(absOffset)
		if idx < 0 {
			abort(op, "offset %d out of composite bounds", absOffset)
		}
		memberEnd := absOffset + absLength - 1
		if memberEnd <= b.endOffsets[idx] {
			// Wholly within member idx.
			m := b.members[idx]
			return resolve(m, op, absOffset-b.startOffsets[idx], absLength)
		}
		// Straddles a member boundary: flatten once, then slice.
		b.flatten()
		return b.direct[absOffset : absOffset+absLength], nil

	default:
		abort(op, "unknown buffer variant")
		return nil, nil
	}
}

// flatten materializes a Composite's bytes into a newly owned contiguous
// array and caches it as the composite's direct pointer. From then on,
// every access on this composite is O(1).
func (b *Buffer) flatten() {
	if b.flattened {
		return
	}
	capacity := int(b.length)
	if capacity < InitialFlattenCapacity {
		capacity = InitialFlattenCapacity
	}
	buf := make([]byte, b.length, capacity)
	for i, m := range b.members {
		src, err := resolve(m, "flatten", 0, m.length)
		if err != nil {
			abort("flatten", "member %d unreadable: %v", i, err)
		}
		copy(buf[b.startOffsets[i]:b.endOffsets[i]+1], src)
	}
	b.direct = buf[:b.length]
	b.flattened = true
}

// resolveFast is used by small (<= 8 byte) integer/float accessors when
// the caller already knows b exposes a direct pointer; it skips variant
// dispatch but still rejects negative offsets and out-of-bounds ends.
func resolveFast(b *Buffer, op string, offset, length int) ([]byte, *Error) {
	if offset < 0 {
		return nil, capturedErr(op, int64(offset), int64(length))
	}
	end := offset + length
	if int64(end) > b.length {
		if int64(end) <= b.reportedLength {
			return nil, capturedErr(op, int64(offset), int64(length))
		}
		return nil, reportedErr(op, int64(offset), int64(length))
	}
	return b.direct[offset:end], nil
}

// GetPtr returns a raw contiguous byte slice of length bytes at offset,
// materializing (flattening) a Composite if necessary. The typed
// accessors in ints.go/floats.go/net.go/bits.go do not call it; they
// go through fetch (ints.go), which uses the same normalize/resolve
// steps plus the resolveFast path for small reads.
func (b *Buffer) GetPtr(offset, length int64) ([]byte, error) {
	ao, al, err := normalize(b, "get_ptr", offset, length)
	if err != nil {
		return nil, err
	}
	data, err := resolve(b, "get_ptr", ao, al)
	if err != nil {
		return nil, err
	}
	return data, nil
}
