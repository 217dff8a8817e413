package tvb

import (
	"fmt"
	"strings"
)

// Formatter is the seam spec.md leaves for an external ASCII
// pretty-printer: TVB never renders bytes itself beyond the default
// below, so a caller that needs hex-dump or protocol-specific
// rendering supplies its own Formatter.
type Formatter interface {
	// FormatText renders data as a human-readable string, replacing
	// non-printable bytes with a placeholder.
	FormatText(data []byte) string
	// FormatBytesPunct renders data as hex octets joined by punct.
	FormatBytesPunct(data []byte, punct byte) string
}

// ASCIIFormatter is the package's default Formatter: non-printable
// bytes become '.', and FormatBytesPunct renders lowercase hex.
type ASCIIFormatter struct{}

// FormatText replaces bytes outside the printable ASCII range with '.'.
func (ASCIIFormatter) FormatText(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, v := range data {
		if v >= 0x20 && v < 0x7f {
			sb.WriteByte(v)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// FormatBytesPunct renders data as lowercase hex octets separated by punct.
func (ASCIIFormatter) FormatBytesPunct(data []byte, punct byte) string {
	var sb strings.Builder
	if len(data) > 0 {
		sb.Grow(len(data)*3 - 1)
	}
	for i, v := range data {
		if i > 0 {
			sb.WriteByte(punct)
		}
		fmt.Fprintf(&sb, "%02x", v)
	}
	return sb.String()
}

// DefaultFormatter is used by FormatText/FormatStringzPad when no
// Formatter is supplied.
var DefaultFormatter Formatter = ASCIIFormatter{}

// FormatText renders length bytes starting at offset through f (or
// DefaultFormatter if f is nil).
func (b *Buffer) FormatText(offset, length int64, f Formatter) (string, error) {
	data, err := b.GetPtr(offset, length)
	if err != nil {
		return "", err
	}
	if f == nil {
		f = DefaultFormatter
	}
	return f.FormatText(data), nil
}

// BytesToStr is FormatText under the name spec.md §6 lists it by: a
// direct "render this byte range as printable ASCII" entry point,
// distinct from FormatText only in name.
func (b *Buffer) BytesToStr(offset, length int64, f Formatter) (string, error) {
	return b.FormatText(offset, length, f)
}

// BytesToStrPunct renders length bytes starting at offset as
// punct-separated hex octets via f's FormatBytesPunct.
func (b *Buffer) BytesToStrPunct(offset, length int64, f Formatter, punct byte) (string, error) {
	data, err := b.GetPtr(offset, length)
	if err != nil {
		return "", err
	}
	if f == nil {
		f = DefaultFormatter
	}
	return f.FormatBytesPunct(data, punct), nil
}

// FormatStringzPad renders the NUL-terminated (or maxLength-truncated)
// string starting at offset through f, exactly like GetNStringz's scan
// rule, but returns rendered text instead of a raw Go string.
func (b *Buffer) FormatStringzPad(offset, maxLength int64, f Formatter) (string, error) {
	s, _, _, err := b.GetNStringz(offset, maxLength)
	if err != nil {
		return "", err
	}
	if f == nil {
		f = DefaultFormatter
	}
	return f.FormatText([]byte(s)), nil
}
