package tvb

import "sync"

// headerPool recycles Buffer headers across the allocation/free cycle,
// mirroring bam/pool.go's bufPool / resizeScratch discipline of
// preferring reuse over fresh allocation in a hot dissection loop. A
// Buffer's header is small and fixed-size, so this is a plain
// sync.Pool rather than bam's scratch-resizing variant.
var headerPool = sync.Pool{
	New: func() interface{} { return &Buffer{} },
}

// newHeader returns a zeroed Buffer header.
func newHeader() *Buffer {
	return headerPool.Get().(*Buffer)
}

// releaseHeader zeroes b and returns it to the pool. The caller (only
// Buffer.release, via FreeChain/Free) must guarantee there are no
// outstanding references to b — the same guarantee sam/pool.go's
// PutInFreePool documents for its freepool.
func releaseHeader(b *Buffer) {
	*b = Buffer{}
	headerPool.Put(b)
}
