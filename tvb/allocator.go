package tvb

import "sync"

// Allocator is the seam spec.md leaves for external memory-pool
// collaborators: a caller can hand the string/copy accessors a custom
// allocation strategy instead of always landing on the Go heap. TVB
// never assumes a particular implementation behind it; the three
// concrete allocators below are the ones this package ships.
type Allocator interface {
	// Allocate returns a byte slice of length size, ready to be filled.
	Allocate(size int) []byte
}

// HeapAllocator always returns a freshly made, GC-managed slice. Safe
// to retain indefinitely.
type HeapAllocator struct{}

// Allocate returns make([]byte, size).
func (HeapAllocator) Allocate(size int) []byte {
	return make([]byte, size)
}

// Heap is the package-wide HeapAllocator instance; most callers that
// don't care about allocation strategy use this one.
var Heap Allocator = HeapAllocator{}

// scratchPool backs EphemeralAllocator, mirroring bam/pool.go's bufPool:
// a sync.Pool of reusable byte slices, grown with resizeScratch's
// double-until-big-enough strategy rather than reallocated from scratch
// each time.
var scratchPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, 256)
		return &buf
	},
}

func resizeScratch(buf []byte, size int) []byte {
	if cap(buf) >= size {
		return buf[:size]
	}
	newCap := cap(buf)
	if newCap == 0 {
		newCap = 256
	}
	for newCap < size {
		newCap *= 2
	}
	return make([]byte, size, newCap)
}

// EphemeralAllocator serves a single call: the slice it returns is only
// valid until the next Allocate call on the same EphemeralAllocator
// value, at which point it may be overwritten. Callers that need to
// keep the bytes must copy them out before then.
type EphemeralAllocator struct {
	scratch *[]byte
}

// NewEphemeralAllocator returns an EphemeralAllocator backed by a
// pooled scratch buffer; call Release when done with it to return the
// buffer to the pool.
func NewEphemeralAllocator() *EphemeralAllocator {
	return &EphemeralAllocator{scratch: scratchPool.Get().(*[]byte)}
}

// Allocate resizes and returns the ephemeral scratch buffer. The
// returned slice is only valid until the next Allocate call.
func (e *EphemeralAllocator) Allocate(size int) []byte {
	*e.scratch = resizeScratch(*e.scratch, size)
	return *e.scratch
}

// Release returns the scratch buffer to the shared pool. Do not use the
// allocator, or any slice it returned, after calling Release.
func (e *EphemeralAllocator) Release() {
	scratchPool.Put(e.scratch)
	e.scratch = nil
}

// SeasonalAllocator serves every call made through one SeasonalAllocator
// value; all of the slices it has returned stay valid until Release is
// called once at the end of the "season" (e.g. one capture-file pass),
// at which point every one of them is invalidated together. Unlike
// EphemeralAllocator it does not recycle its buffer between calls
// within the season, since multiple results must stay live
// simultaneously.
type SeasonalAllocator struct {
	arena [][]byte
}

// NewSeasonalAllocator returns an empty SeasonalAllocator.
func NewSeasonalAllocator() *SeasonalAllocator {
	return &SeasonalAllocator{}
}

// Allocate appends a freshly made slice to the season's arena and
// returns it. It stays valid until Release.
func (s *SeasonalAllocator) Allocate(size int) []byte {
	buf := make([]byte, size)
	s.arena = append(s.arena, buf)
	return buf
}

// Release drops every slice this allocator has handed out. Buffers
// already copied elsewhere are unaffected; any reference kept only
// through this allocator becomes invalid.
func (s *SeasonalAllocator) Release() {
	s.arena = nil
}
