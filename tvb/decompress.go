package tvb

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
)

// MaxDecompressedSize bounds how much output Uncompress will produce
// from a single compressed span, regardless of what the stream itself
// claims. A malformed or adversarial capture that decompresses to
// gigabytes from a few captured bytes must not be allowed to exhaust
// memory.
var MaxDecompressedSize int64 = 10 * 1024 * 1024

// MaxDecompressAttempts bounds how many framing guesses Uncompress
// will try (raw deflate, zlib-wrapped, gzip-wrapped) before giving up.
var MaxDecompressAttempts = 3

// Uncompress decompresses length bytes starting at offset and returns
// the result as a new, independent Real buffer. It picks the framing by
// sniffing the header bytes: gzip-framed if the gzip magic is present,
// zlib-framed if the zlib header check holds, and raw deflate last —
// trying the applicable ones in that order, at most
// MaxDecompressAttempts of them. Unlike a single compress/zlib or
// compress/gzip call, it distinguishes a stream that decoded cleanly
// but ran out of compressed input (returns the partial result alongside
// ErrPartialDecompress) from one that is simply not a recognized
// framing at all (returns a nil *Buffer and a different error).
func (b *Buffer) Uncompress(offset, length int64) (*Buffer, error) {
	raw, err := b.GetPtr(offset, length)
	if err != nil {
		return nil, err
	}
	return uncompressBytes(raw)
}

// UncompressChild is Uncompress plus RegisterChild bookkeeping, so that
// freeing parent along the FreeChain also frees the decompressed
// result.
func (b *Buffer) UncompressChild(offset, length int64) (*Buffer, error) {
	child, err := b.Uncompress(offset, length)
	if err != nil {
		return nil, err
	}
	b.RegisterChild(child)
	return child, nil
}

// uncompressBytes guesses the framing of a compressed span by
// inspecting its header bytes rather than blindly trying each decoder
// in turn: deflate has no self-describing header, so a gzip- or
// zlib-framed stream fed to a raw flate.Reader can decode without
// error into silent garbage instead of failing. Sniffing the magic
// bytes first, and falling back to raw deflate only when neither
// signature matches, avoids that failure mode.
func uncompressBytes(raw []byte) (*Buffer, error) {
	type attempt struct {
		applicable bool
		open       func([]byte) (io.ReadCloser, error)
	}
	attempts := []attempt{
		{looksLikeGzip(raw), newGzipHeaderSkipReader},
		{looksLikeZlib(raw), newZlibReader},
		{true, newRawDeflateReader},
	}

	tried := 0
	var lastErr error
	for _, a := range attempts {
		if !a.applicable || tried >= MaxDecompressAttempts {
			continue
		}
		tried++
		r, openErr := a.open(raw)
		if openErr != nil {
			lastErr = openErr
			continue
		}
		out, partial, decErr := drainLimited(r)
		r.Close()
		if decErr != nil {
			lastErr = decErr
			continue
		}
		result, nerr := NewReal(out, len(out), len(out), nil)
		if nerr != nil {
			return nil, nerr
		}
		if partial {
			return result, ErrPartialDecompress
		}
		return result, nil
	}
	if lastErr == nil {
		lastErr = errGzipHeader
	}
	return nil, lastErr
}

func looksLikeGzip(raw []byte) bool {
	return len(raw) >= 10 && raw[0] == 0x1f && raw[1] == 0x8b && raw[2] == 8
}

// looksLikeZlib checks the 2-byte zlib header: the low nibble of the
// first byte must be 8 (deflate), and the 16-bit big-endian value must
// be a multiple of 31 — the check byte zlib itself requires.
func looksLikeZlib(raw []byte) bool {
	if len(raw) < 2 {
		return false
	}
	if raw[0]&0x0f != 8 {
		return false
	}
	return (int(raw[0])*256+int(raw[1]))%31 == 0
}

func newRawDeflateReader(raw []byte) (io.ReadCloser, error) {
	return flate.NewReader(bytes.NewReader(raw)), nil
}

func newZlibReader(raw []byte) (io.ReadCloser, error) {
	r, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	return r, nil
}

// newGzipHeaderSkipReader manually walks a gzip header and hands the
// remaining bytes to flate.NewReader, rather than using compress/gzip.
// compress/gzip validates and consumes the trailing CRC32/ISIZE footer,
// which a truncated capture frequently does not have; skipping the
// header by hand and decoding the raw deflate stream lets a capture
// truncated before the footer still yield output instead of a hard
// read error.
func newGzipHeaderSkipReader(raw []byte) (io.ReadCloser, error) {
	const (
		gzipMagic0  = 0x1f
		gzipMagic1  = 0x8b
		gzipDeflate = 8
		flagText    = 1 << 0
		flagHCRC    = 1 << 1
		flagExtra   = 1 << 2
		flagName    = 1 << 3
		flagComment = 1 << 4
	)
	if len(raw) < 10 || raw[0] != gzipMagic0 || raw[1] != gzipMagic1 || raw[2] != gzipDeflate {
		return nil, errGzipHeader
	}
	flags := raw[3]
	pos := 10
	advance := func(n int) bool {
		if pos+n > len(raw) {
			return false
		}
		pos += n
		return true
	}
	if flags&flagExtra != 0 {
		if pos+2 > len(raw) {
			return nil, errGzipHeader
		}
		xlen := int(raw[pos]) | int(raw[pos+1])<<8
		if !advance(2) || !advance(xlen) {
			return nil, errGzipHeader
		}
	}
	if flags&flagName != 0 {
		if !skipNulTerminated(raw, &pos) {
			return nil, errGzipHeader
		}
	}
	if flags&flagComment != 0 {
		if !skipNulTerminated(raw, &pos) {
			return nil, errGzipHeader
		}
	}
	if flags&flagHCRC != 0 {
		if !advance(2) {
			return nil, errGzipHeader
		}
	}
	return flate.NewReader(bytes.NewReader(raw[pos:])), nil
}

func skipNulTerminated(raw []byte, pos *int) bool {
	for *pos < len(raw) {
		if raw[*pos] == 0 {
			*pos++
			return true
		}
		*pos++
	}
	return false
}

var errGzipHeader = zlibHeaderError("not a gzip stream")

type zlibHeaderError string

func (e zlibHeaderError) Error() string { return string(e) }

// drainLimited reads r up to MaxDecompressedSize bytes. partial is true
// if the underlying stream signaled an unexpected end of input after
// at least one byte was produced — i.e. the compressed data was
// genuinely truncated rather than malformed from the start.
func drainLimited(r io.Reader) (data []byte, partial bool, err error) {
	limited := io.LimitReader(r, MaxDecompressedSize)
	var buf bytes.Buffer
	_, readErr := buf.ReadFrom(limited)
	if readErr != nil {
		if readErr == io.ErrUnexpectedEOF && buf.Len() > 0 {
			return buf.Bytes(), true, nil
		}
		return nil, false, readErr
	}
	return buf.Bytes(), false, nil
}
