package tvb

// IncrementUsage adds n to b's reference count.
func (b *Buffer) IncrementUsage(n int32) {
	b.usageCount += n
}

// DecrementUsage subtracts n from b's reference count. If n is at least
// the current count, b is freed instead of going negative.
func (b *Buffer) DecrementUsage(n int32) {
	if n >= b.usageCount {
		b.release()
		return
	}
	b.usageCount -= n
}

// RegisterChild records child as depending on b, so that freeing b
// cascades to child via FreeChain.
func (b *Buffer) RegisterChild(child *Buffer) {
	b.usedIn = append(b.usedIn, child)
}

// Free decrements b's reference count by one; at zero it releases the
// resources the variant owns (invoking a Real's free callback,
// decrementing a Subset's backing, or releasing a Composite's members
// and any cached flattened copy).
func (b *Buffer) Free() {
	b.DecrementUsage(1)
}

func (b *Buffer) release() {
	b.usageCount = 0
	switch b.kind {
	case realKind:
		if b.freeFn != nil {
			b.freeFn()
			b.freeFn = nil
		}
	case subsetKind:
		if b.backing != nil {
			b.backing.DecrementUsage(1)
		}
	case compositeKind:
		for _, m := range b.members {
			m.DecrementUsage(1)
		}
		b.members = nil
		b.startOffsets = nil
		b.endOffsets = nil
		if b.flattened {
			b.direct = nil
			b.flattened = false
		}
	}
	releaseHeader(b)
}

// FreeChain releases b and, transitively, every buffer registered as
// used-in b.
//
// The historical source walks the used_in list node *after* the
// recursive call returns, which is only safe because the recursion
// happens before the self-free. To avoid depending on that ordering
// subtlety, this implementation snapshots usedIn into a local slice
// before recursing (spec.md §4.8, §9).
func (b *Buffer) FreeChain() {
	children := make([]*Buffer, len(b.usedIn))
	copy(children, b.usedIn)
	for _, c := range children {
		c.FreeChain()
	}
	b.Free()
}
