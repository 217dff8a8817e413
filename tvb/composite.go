package tvb

// NewComposite creates an empty, unfinalized Composite. Use Append/Prepend
// to add members, then Finalize before any read.
func NewComposite() *Buffer {
	b := newHeader()
	b.kind = compositeKind
	b.initialized = true
	b.usageCount = 1
	b.dataSource = b
	return b
}

// Append adds member to the end of the composite's member list. Panics if
// the composite has already been finalized.
func (b *Buffer) Append(member *Buffer) {
	requireKind(b, "append", compositeKind)
	if b.finalized {
		abort("append", "composite is already finalized")
	}
	requireInitialized(member, "append")
	b.members = append(b.members, member)
	member.IncrementUsage(1)
	b.RegisterChild(member)
}

// Prepend adds member to the start of the composite's member list. Panics
// if the composite has already been finalized.
func (b *Buffer) Prepend(member *Buffer) {
	requireKind(b, "prepend", compositeKind)
	if b.finalized {
		abort("prepend", "composite is already finalized")
	}
	requireInitialized(member, "prepend")
	b.members = append([]*Buffer{member}, b.members...)
	member.IncrementUsage(1)
	b.RegisterChild(member)
}

// Finalize computes the composite's length (the sum of its members'
// lengths), sets its reported length equal to its length (a Composite has
// no independent wire length — invariant 2), and materializes the
// start/end offset tables used by the contiguity resolver. After Finalize
// the composite's member list is immutable.
func (b *Buffer) Finalize() {
	requireKind(b, "finalize", compositeKind)
	if b.finalized {
		return
	}
	b.startOffsets = make([]int64, len(b.members))
	b.endOffsets = make([]int64, len(b.members))
	var total int64
	for i, m := range b.members {
		b.startOffsets[i] = total
		total += m.length
		b.endOffsets[i] = total - 1
	}
	b.length = total
	b.reportedLength = total
	b.finalized = true
}

// memberContaining returns the index of the member containing absOffset,
// or -1 if absOffset is at or past the composite's length.
func (b *Buffer) memberContaining(absOffset int64) int {
	lo, hi := 0, len(b.endOffsets)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		if absOffset > b.endOffsets[mid] {
			lo = mid + 1
		} else if absOffset < b.startOffsets[mid] {
			hi = mid - 1
		} else {
			return mid
		}
	}
	return -1
}
