// Package tvb implements the Testy Virtual Buffer: a layered,
// bounds-checked byte-buffer abstraction over heterogeneous packet
// storage. A Buffer is one of three shapes — Real (owns or borrows a
// contiguous byte range), Subset (a window into a backing Buffer), or
// Composite (a concatenation of member Buffers) — presented through a
// single uniform, bounds-checked read interface.
//
// Every accessor in this package is either "ensure"-style (returns a
// non-nil *Error on failure) or "no-exception"-style (returns an
// out-of-range sentinel such as -1 or false and never an error). The two
// kinds of bounds failure — CapturedBounds (the capture was truncated)
// and ReportedBounds (the protocol is malformed) — are carried as a field
// on *Error, not as distinct Go error types, so callers switch on Kind.
package tvb

import "fmt"

type variantKind uint8

const (
	realKind variantKind = iota
	subsetKind
	compositeKind
)

func (k variantKind) String() string {
	switch k {
	case realKind:
		return "real"
	case subsetKind:
		return "subset"
	case compositeKind:
		return "composite"
	default:
		return "unknown"
	}
}

// Buffer is an immutable view over bytes. See the package doc for the
// three shapes it can take.
type Buffer struct {
	kind variantKind

	length         int64
	reportedLength int64
	initialized    bool

	// dataSource is the transitive root Real buffer this view ultimately
	// derives from. Set at construction, never changed (invariant 3/4).
	dataSource *Buffer

	usageCount int32
	usedIn     []*Buffer

	// direct, when non-nil, is a byte slice such that direct[i] is byte i
	// of this buffer. Real buffers always have one; Subsets over a
	// contiguous backing cache one (invariant 5); Composites gain one
	// only after flatten.
	direct []byte

	// --- Real-only fields ---
	freeFn func()

	// --- Subset-only fields ---
	backing       *Buffer
	backingOffset int64

	// --- Composite-only fields ---
	members      []*Buffer
	startOffsets []int64
	endOffsets   []int64
	finalized    bool
	flattened    bool
}

// Length returns the number of bytes actually captured. Panics if b is
// not initialized.
func (b *Buffer) Length() int64 {
	requireInitialized(b, "length")
	return b.length
}

// ReportedLength returns the number of bytes the wire protocol claims
// exist. Panics if b is not initialized.
func (b *Buffer) ReportedLength() int64 {
	requireInitialized(b, "reported_length")
	return b.reportedLength
}

// DataSource returns the transitive root Real buffer this view derives
// from; dissectors use this to identify "the packet."
func (b *Buffer) DataSource() *Buffer {
	requireInitialized(b, "data_source")
	return b.dataSource
}

// Kind exposes the variant for diagnostics and tests.
func (b *Buffer) Kind() string { return b.kind.String() }

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer{kind=%s length=%d reported=%d}", b.kind, b.length, b.reportedLength)
}
