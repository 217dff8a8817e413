// Package recordstream reads a simple length-prefixed stream of
// records and hands each one back as a tvb.Buffer, so that a dissector
// built on tvb can work record-by-record over a stream the way
// bam.Reader works alignment-by-alignment over a BGZF stream. It
// carries no protocol semantics of its own beyond the 4-byte
// little-endian length prefix: everything past that prefix is opaque
// bytes for the caller's own tvb accessors to interpret.
package recordstream

import (
	"encoding/binary"
	"errors"
	"io"
	"sync"

	"github.com/Schaudge/tvb/tvb"
)

// MaxRecordSize bounds a single record's declared length, the same way
// bam's maxBAMRecordSize bounds a BAM alignment block: a corrupt length
// prefix must not be allowed to trigger a multi-gigabyte allocation.
var MaxRecordSize = 0xffffff

var scratchPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, 256)
		return &buf
	},
}

func resizeScratch(buf []byte, n int) []byte {
	if cap(buf) >= n {
		return buf[:n]
	}
	size := (n/16 + 1) * 16
	return make([]byte, n, size)
}

// Omit controls how much of a record's reported length survives into
// the tvb.Buffer handed back by Read — analogous to bam.Reader.Omit,
// but expressed as a captured-length truncation via
// tvb.Buffer.SetReportedLength rather than a field-by-field skip,
// since recordstream does not know the record's internal field layout.
type Omit int

const (
	// OmitNone returns the record unmodified.
	OmitNone Omit = iota
	// OmitTrailer truncates the reported length to the keep bytes the
	// caller passed to SetOmit.
	OmitTrailer
)

// Reader reads consecutive length-prefixed records from r.
type Reader struct {
	r         io.Reader
	omit      Omit
	keep      int
	sizeBuf   [4]byte
	nRead     int64
	lastError error
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// SetOmit sets the truncation mode applied to every subsequent Read.
func (rd *Reader) SetOmit(o Omit, keep int) {
	rd.omit = o
	rd.keep = keep
}

// Read returns the next record as an independent tvb.Buffer (kind
// Real), or io.EOF once the stream is exhausted. The returned Buffer's
// reportedLength is truncated to keep bytes if Omit is OmitTrailer.
func (rd *Reader) Read() (*tvb.Buffer, error) {
	n, err := io.ReadFull(rd.r, rd.sizeBuf[:])
	if err != nil {
		if err == io.ErrUnexpectedEOF || n == 0 {
			if n == 0 {
				return nil, io.EOF
			}
		}
		return nil, err
	}
	size := int(binary.LittleEndian.Uint32(rd.sizeBuf[:]))
	if size < 0 || size > MaxRecordSize {
		return nil, errors.New("recordstream: record length out of range")
	}

	scratch := scratchPool.Get().(*[]byte)
	*scratch = resizeScratch(*scratch, size)
	if _, err := io.ReadFull(rd.r, *scratch); err != nil {
		scratchPool.Put(scratch)
		return nil, err
	}
	// Each record owns a private copy: scratch is returned to the pool
	// immediately, but the tvb.Buffer must outlive this call.
	owned := make([]byte, size)
	copy(owned, *scratch)
	scratchPool.Put(scratch)

	rd.nRead++
	b, rerr := tvb.NewReal(owned, len(owned), -1, nil)
	if rerr != nil {
		return nil, rerr
	}
	if rd.omit == OmitTrailer && rd.keep < len(owned) {
		if serr := b.SetReportedLength(int64(rd.keep)); serr != nil {
			return nil, serr
		}
	}
	return b, nil
}

// NumRead returns the number of records successfully read so far.
func (rd *Reader) NumRead() int64 { return rd.nRead }
