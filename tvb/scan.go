package tvb

import "bytes"

// FindByte scans forward from offset for the first occurrence of
// needle, stopping at most maxLength bytes later (maxLength may be -1
// meaning "to end of captured data", per the usual length sentinel).
// It is no-exception style: returns -1 if needle is not found within
// the scanned span, rather than raising.
func (b *Buffer) FindByte(offset int64, maxLength int64, needle byte) int64 {
	limit := b.LengthRemaining(offset)
	if limit < 0 {
		return -1
	}
	if maxLength >= 0 && maxLength < limit {
		limit = maxLength
	}
	for i := int64(0); i < limit; i++ {
		v, err := b.GetU8(offset + i)
		if err != nil {
			return -1
		}
		if v == needle {
			return offset + i
		}
	}
	return -1
}

// FindAnyOf scans forward from offset for the first byte that appears
// anywhere in needles, within at most maxLength bytes. Unlike FindByte
// it materializes the scanned span as one contiguous slice first (via
// GetPtr), which is what forces a Composite straddling the scan window
// to flatten — there is no way to binary-search a multi-byte needle
// set member-by-member the way single-byte reads can.
func (b *Buffer) FindAnyOf(offset int64, maxLength int64, needles []byte) int64 {
	limit := b.LengthRemaining(offset)
	if limit < 0 {
		return -1
	}
	if maxLength >= 0 && maxLength < limit {
		limit = maxLength
	}
	data, err := b.GetPtr(offset, limit)
	if err != nil {
		return -1
	}
	idx := bytes.IndexAny(data, string(needles))
	if idx < 0 {
		return -1
	}
	return offset + int64(idx)
}

// findTerminatorStart backs up one byte from nl if it is preceded by a
// '\r', so the '\r' is treated as part of the line terminator rather
// than the line body.
func (b *Buffer) findTerminatorStart(nl, offset int64) int64 {
	if nl > offset {
		if v, err := b.GetU8(nl - 1); err == nil && v == '\r' {
			return nl - 1
		}
	}
	return nl
}

// FindLineEnd scans for the line starting at offset and returns both
// linelen (the line's length excluding its CR/LF terminator) and
// nextOffset (one past the terminator). If no '\n' is found before
// captured data runs out: when desegment is true, it returns (-1, -1),
// signaling the caller should wait for more data and retry; otherwise
// it treats the remaining captured bytes as a complete, unterminated
// line and returns their length with nextOffset at the buffer's end
// (spec.md §4.6, §8 scenario 5).
//
// A '\r' immediately preceding the '\n' is treated as part of the line
// terminator, not the line body.
func (b *Buffer) FindLineEnd(offset int64, desegment bool) (linelen, nextOffset int64) {
	nl := b.FindByte(offset, -1, '\n')
	if nl >= 0 {
		termStart := b.findTerminatorStart(nl, offset)
		return termStart - offset, nl + 1
	}
	if desegment {
		return -1, -1
	}
	end := b.Length()
	return end - offset, end
}

// FindLineEndUnquoted is FindLineEnd's quote-aware counterpart: a
// '\n' inside a double-quoted span (quotes toggled by unescaped '"'
// bytes; inside a quoted span a backslash escapes the byte after it)
// is treated as line content, not a terminator. Same
// (linelen, nextOffset) return shape and desegment rule as FindLineEnd.
func (b *Buffer) FindLineEndUnquoted(offset int64, desegment bool) (linelen, nextOffset int64) {
	inQuotes := false
	escaped := false
	limit := b.Length()
	for i := offset; i < limit; i++ {
		v, err := b.GetU8(i)
		if err != nil {
			break
		}
		if escaped {
			escaped = false
			continue
		}
		switch v {
		case '\\':
			escaped = inQuotes
		case '"':
			inQuotes = !inQuotes
		case '\n':
			if !inQuotes {
				termStart := b.findTerminatorStart(i, offset)
				return termStart - offset, i + 1
			}
		}
	}
	if desegment {
		return -1, -1
	}
	return limit - offset, limit
}

func isSpaceByte(v byte) bool {
	switch v {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// SkipWhitespace returns the offset of the first non-whitespace byte
// at or after offset, or Length() if the rest of the buffer is all
// whitespace.
func (b *Buffer) SkipWhitespace(offset int64) int64 {
	limit := b.Length()
	for i := offset; i < limit; i++ {
		v, err := b.GetU8(i)
		if err != nil {
			return limit
		}
		if !isSpaceByte(v) {
			return i
		}
	}
	return limit
}

// SkipWhitespaceBackward returns the offset one past the last
// non-whitespace byte at or before offset, scanning backward toward 0.
func (b *Buffer) SkipWhitespaceBackward(offset int64) int64 {
	for i := offset; i >= 0; i-- {
		v, err := b.GetU8(i)
		if err != nil {
			continue
		}
		if !isSpaceByte(v) {
			return i + 1
		}
	}
	return 0
}
