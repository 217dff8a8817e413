package tvb

// LengthRemaining returns the normalized absolute length available from
// offset to the end of captured data (as if length == -1 were passed to
// an accessor). It never raises: if offset is out of range, it returns
// -1, not an error.
func (b *Buffer) LengthRemaining(offset int64) int64 {
	_, al, err := normalize(b, "length_remaining", offset, -1)
	if err != nil {
		return -1
	}
	return al
}

// EnsureLengthRemaining is like LengthRemaining but raises when offset is
// out of range or when zero bytes remain. The Kind of the returned error
// reflects whether offset has passed captured length or reported length.
func (b *Buffer) EnsureLengthRemaining(offset int64) (int64, error) {
	ao, al, err := normalize(b, "ensure_length_remaining", offset, -1)
	if err != nil {
		return 0, err
	}
	if al == 0 {
		if ao >= b.reportedLength {
			return 0, reportedErr("ensure_length_remaining", offset, -1)
		}
		return 0, capturedErr("ensure_length_remaining", offset, -1)
	}
	return al, nil
}

// BytesExist reports whether length bytes exist at offset. It never
// raises.
func (b *Buffer) BytesExist(offset, length int64) bool {
	_, _, err := normalize(b, "bytes_exist", offset, length)
	return err == nil
}

// EnsureBytesExist raises on failure. Any negative length, including -1,
// is treated as "more bytes than could possibly exist" and raises
// ReportedBounds unconditionally — deliberately different from the
// normalization rule used elsewhere (spec.md §4.3).
func (b *Buffer) EnsureBytesExist(offset, length int64) error {
	if err := ensureBytesExistRaw(b, "ensure_bytes_exist", offset, length); err != nil {
		return err
	}
	return nil
}

// OffsetExists reports whether offset is strictly less than the captured
// length (not <=, unlike BytesExist with a zero length).
func (b *Buffer) OffsetExists(offset int64) bool {
	requireInitialized(b, "offset_exists")
	var abs int64
	if offset >= 0 {
		abs = offset
	} else {
		abs = b.length + offset
	}
	return abs >= 0 && abs < b.length
}

// SetReportedLength shrinks the reported length. It raises if r exceeds
// the current reported length (reported length can only shrink
// monotonically), and additionally clamps the captured length down if it
// now exceeds the new reported length.
//
// Composites have no independently wire-claimed length (their reported
// length equals their captured length at finalize time); calling this on
// a Composite raises ErrCompositeReportedLength rather than leaving
// wire-length semantics on composites undefined (spec.md §9).
func (b *Buffer) SetReportedLength(r int64) error {
	requireInitialized(b, "set_reported_length")
	if b.kind == compositeKind {
		return ErrCompositeReportedLength
	}
	if r > b.reportedLength {
		return reportedErr("set_reported_length", r, -1)
	}
	b.reportedLength = r
	if b.length > r {
		b.length = r
	}
	return nil
}
