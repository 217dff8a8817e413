package tvb

import "math"

// normalize implements spec.md §4.1: it turns a possibly-negative offset
// and a sentinel length (-1 meaning "to end of captured data") into
// absolute, non-negative (offset, length) values, or a classified
// bounds *Error.
//
// The "equals length" case — offset exactly one past the last byte, with
// length 0 — is in-bounds. This is load-bearing: it lets a dissector
// build a zero-length Subset for the next layer, so that the *next*
// layer, not this one, raises on the following access.
func normalize(b *Buffer, op string, offset, length int64) (absOffset, absLength int64, err *Error) {
	requireInitialized(b, op)

	var ao int64
	if offset >= 0 {
		switch {
		case offset > b.reportedLength:
			return 0, 0, reportedErr(op, offset, length)
		case offset > b.length:
			return 0, 0, capturedErr(op, offset, length)
		default:
			ao = offset
		}
	} else {
		mag := -offset
		switch {
		case mag > b.reportedLength:
			return 0, 0, reportedErr(op, offset, length)
		case mag > b.length:
			return 0, 0, capturedErr(op, offset, length)
		default:
			ao = b.length + offset
		}
	}

	var al int64
	switch {
	case length == -1:
		al = b.length - ao
	case length < -1:
		return 0, 0, capturedErr(op, offset, length)
	default:
		al = length
	}

	end := ao + al
	if end < ao || end < 0 {
		// overflow: clamp to max representable.
		end = math.MaxInt64
	}

	switch {
	case end <= b.length:
		return ao, al, nil
	case end <= b.reportedLength:
		return 0, 0, capturedErr(op, offset, length)
	default:
		return 0, 0, reportedErr(op, offset, length)
	}
}

// ensureBytesExistRaw implements the deliberately different rule of
// ensure_bytes_exist: any negative length (including -1) is treated as
// "more bytes than could possibly exist" and raises ReportedBounds
// unconditionally, rather than being interpreted as "to end of buffer."
func ensureBytesExistRaw(b *Buffer, op string, offset, length int64) *Error {
	if length < 0 {
		return reportedErr(op, offset, length)
	}
	_, _, err := normalize(b, op, offset, length)
	return err
}
