package tvb

import "bytes"

// FindSubBuffer searches for needle within haystack starting at
// offset, scanning at most maxLength bytes (maxLength == -1 means to
// end of captured data). It returns the absolute offset of the first
// match, or -1 if needle does not occur in the scanned span. Like
// FindAnyOf, it materializes the scanned span contiguously, flattening
// a straddling Composite if necessary.
func (b *Buffer) FindSubBuffer(offset int64, maxLength int64, needle []byte) int64 {
	if len(needle) == 0 {
		return offset
	}
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
	idx := bytes.Index(data, needle)
	if idx < 0 {
		return -1
	}
	return offset + int64(idx)
}
