package tvb

import "bytes"

// Memeql reports whether the len(data) bytes starting at offset equal
// data exactly. It is a no-exception comparator, matching spec.md
// §4.6: if fewer than len(data) bytes are available, that counts as
// "not equal" rather than raising, the same way Strnlen (strings.go)
// folds an out-of-range scan into its no-exception sentinel instead of
// propagating a bounds error.
func (b *Buffer) Memeql(offset int64, data []byte) (bool, error) {
	got, err := b.GetPtr(offset, int64(len(data)))
	if err != nil {
		return false, nil
	}
	return bytes.Equal(got, data), nil
}

// Strneql reports whether the len(s) bytes starting at offset equal s,
// byte for byte.
func (b *Buffer) Strneql(offset int64, s string) (bool, error) {
	return b.Memeql(offset, []byte(s))
}

// Strncaseeql is Strneql's ASCII case-insensitive counterpart.
func (b *Buffer) Strncaseeql(offset int64, s string) (bool, error) {
	got, err := b.GetPtr(offset, int64(len(s)))
	if err != nil {
		return false, nil
	}
	return bytes.EqualFold(got, []byte(s)), nil
}
