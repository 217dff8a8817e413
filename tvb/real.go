package tvb

// NewReal constructs a Buffer that owns or borrows the contiguous byte
// range data[0:length]. reportedLength must be >= -1; a -1 means
// "reported length equals captured length." A value < -1 raises
// ReportedBounds immediately, before any allocation, so there is nothing
// to leak on the error path (spec.md §4.2, §9: "validate parameters
// before allocating").
func NewReal(data []byte, length int, reportedLength int, freeFn func()) (*Buffer, error) {
	if reportedLength < -1 {
		return nil, reportedErr("new_real", int64(length), int64(reportedLength))
	}
	rl := int64(reportedLength)
	if reportedLength == -1 {
		rl = int64(length)
	}

	b := newHeader()
	b.kind = realKind
	b.length = int64(length)
	b.reportedLength = rl
	b.initialized = true
	// data[:length] on a nil data with length 0 stays nil; direct must
	// stay non-nil for a Real so resolve()'s "b.direct != nil" dispatch
	// never mistakes a legitimate zero-length Real for the unreachable
	// "Real without a direct pointer" case (spec.md §4.4 step 3).
	b.direct = data[:length]
	if b.direct == nil {
		b.direct = []byte{}
	}
	b.freeFn = freeFn
	b.usageCount = 1
	b.dataSource = b
	return b, nil
}

// NewRealChild is like NewReal, but additionally registers the new
// buffer as used-in parent, so that freeing parent (via FreeChain)
// releases the child too. A child Real inherits no ancestry of its own —
// its DataSource is itself, per invariant 3 — it is merely torn down
// alongside its parent.
func NewRealChild(parent *Buffer, data []byte, length int, reportedLength int, freeFn func()) (*Buffer, error) {
	b, err := NewReal(data, length, reportedLength, freeFn)
	if err != nil {
		return nil, err
	}
	parent.RegisterChild(b)
	return b, nil
}
