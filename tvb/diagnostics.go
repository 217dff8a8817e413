package tvb

import (
	"fmt"

	"v.io/x/lib/vlog"
)

// abort reports a programmer-contract violation — an uninitialized
// buffer, a variant-specific routine called on the wrong variant, a
// bit-width outside a declared range — and then panics. These are not
// recoverable: the caller's own invariants are broken, not the packet's.
//
// Mirrors sam/pool.go's vlog.Errorf diagnostic immediately preceding its
// discard-and-return path; TVB panics instead of discarding because there
// is no well-formed value left to return.
func abort(op, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	vlog.Errorf("tvb: %s: %s", op, msg)
	panic(fmt.Sprintf("tvb: %s: %s", op, msg))
}

func requireInitialized(b *Buffer, op string) {
	if b == nil || !b.initialized {
		abort(op, "buffer is not initialized")
	}
}

func requireKind(b *Buffer, op string, kind variantKind) {
	if b.kind != kind {
		abort(op, "expected %s buffer, got %s", kind, b.kind)
	}
}
