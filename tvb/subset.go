package tvb

// NewSubset constructs a window into backing. The window
// [backingOffset, backingOffset+backingLength) must lie within backing's
// captured length, and so within its reported length (invariant 1); a
// window reaching past the captured bytes is rejected with the usual
// CapturedBounds/ReportedBounds classification. If reportedLength == -1, the subset
// inherits backing.reportedLength - backingOffset; otherwise the supplied
// value is used verbatim, which may legally exceed the actual captured
// data — representing wire-claimed data beyond the capture.
//
// Bounds are validated before the Buffer is allocated, so a failed
// construction never leaves a partially-built value behind (spec.md §4.2,
// §9).
func NewSubset(backing *Buffer, backingOffset, backingLength int64, reportedLength int64) (*Buffer, error) {
	requireInitialized(backing, "new_subset")

	ao, al, err := normalize(backing, "new_subset", backingOffset, backingLength)
	if err != nil {
		return nil, err
	}

	rl := reportedLength
	if reportedLength == -1 {
		rl = backing.reportedLength - ao
	} else if rl < 0 {
		return nil, reportedErr("new_subset", backingOffset, reportedLength)
	}

	b := newHeader()
	b.kind = subsetKind
	b.length = al
	b.reportedLength = rl
	b.initialized = true
	b.backing = backing
	b.backingOffset = ao
	b.dataSource = backing.dataSource
	b.usageCount = 1

	// Invariant 5: if backing exposes a direct byte pointer, cache one so
	// single-field reads on this subset skip recursion through backing.
	if backing.direct != nil {
		b.direct = backing.direct[ao : ao+al]
	}

	backing.IncrementUsage(1)
	return b, nil
}
