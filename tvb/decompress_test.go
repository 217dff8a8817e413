package tvb

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"testing"

	"github.com/grailbio/testutil/assert"
)

func buildRawDeflate(t *testing.T, payload []byte) []byte {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestSpeed)
	assert.NoError(t, err)
	_, err = w.Write(payload)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	return buf.Bytes()
}

func buildZlib(t *testing.T, payload []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(payload)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	return buf.Bytes()
}

func buildGzip(t *testing.T, payload []byte) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(payload)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	return buf.Bytes()
}

func TestUncompressRawDeflate(t *testing.T) {
	payload := []byte("the quick brown fox jumps over the lazy dog")
	compressed := buildRawDeflate(t, payload)
	b := newTestReal(t, compressed, len(compressed))

	out, err := b.Uncompress(0, int64(len(compressed)))
	assert.NoError(t, err)
	data, derr := out.GetPtr(0, out.Length())
	assert.NoError(t, derr)
	assert.EQ(t, string(data), string(payload))
}

func TestUncompressZlib(t *testing.T) {
	payload := bytes.Repeat([]byte("zlib-framed-payload "), 20)
	compressed := buildZlib(t, payload)
	b := newTestReal(t, compressed, len(compressed))

	out, err := b.Uncompress(0, int64(len(compressed)))
	assert.NoError(t, err)
	data, derr := out.GetPtr(0, out.Length())
	assert.NoError(t, derr)
	assert.EQ(t, string(data), string(payload))
}

func TestUncompressGzip(t *testing.T) {
	payload := bytes.Repeat([]byte("gzip-framed-payload "), 20)
	compressed := buildGzip(t, payload)
	b := newTestReal(t, compressed, len(compressed))

	out, err := b.Uncompress(0, int64(len(compressed)))
	assert.NoError(t, err)
	data, derr := out.GetPtr(0, out.Length())
	assert.NoError(t, derr)
	assert.EQ(t, string(data), string(payload))
}

func TestUncompressGzipWithExtraAndName(t *testing.T) {
	payload := []byte("named stream payload")
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	w.Name = "trace.bin"
	w.Comment = "a comment"
	_, err := w.Write(payload)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	b := newTestReal(t, buf.Bytes(), buf.Len())
	out, uerr := b.Uncompress(0, int64(buf.Len()))
	assert.NoError(t, uerr)
	data, derr := out.GetPtr(0, out.Length())
	assert.NoError(t, derr)
	assert.EQ(t, string(data), string(payload))
}

func TestUncompressTruncatedStreamIsPartial(t *testing.T) {
	payload := bytes.Repeat([]byte("partial decompress test payload "), 50)
	compressed := buildZlib(t, payload)
	truncated := compressed[:len(compressed)-4]
	b := newTestReal(t, truncated, len(truncated))

	out, err := b.Uncompress(0, int64(len(truncated)))
	if err == nil {
		t.Fatal("expected ErrPartialDecompress or a decode error for truncated input")
	}
	if err == ErrPartialDecompress {
		assert.True(t, out.Length() > 0, "partial result should still carry whatever decoded cleanly")
	}
}

func TestUncompressGarbageFails(t *testing.T) {
	b := newTestReal(t, []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22, 0x33}, 8)
	_, err := b.Uncompress(0, 8)
	if err == nil {
		t.Fatal("expected an error decompressing non-compressed garbage")
	}
}

func TestUncompressRespectsMaxDecompressedSize(t *testing.T) {
	saved := MaxDecompressedSize
	defer func() { MaxDecompressedSize = saved }()
	MaxDecompressedSize = 8

	payload := bytes.Repeat([]byte("x"), 4096)
	compressed := buildZlib(t, payload)
	b := newTestReal(t, compressed, len(compressed))

	out, err := b.Uncompress(0, int64(len(compressed)))
	assert.NoError(t, err)
	assert.EQ(t, out.Length(), int64(8))
}
