package tvb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

func TestNewRealNilDataZeroLengthStaysReadable(t *testing.T) {
	// data[:length] on a nil slice with length 0 is itself nil; a Real
	// buffer must still expose a non-nil direct pointer so a subsequent
	// zero-length GetPtr resolves instead of hitting the "Real without a
	// direct pointer" contract-violation abort.
	b, err := NewReal(nil, 0, -1, nil)
	assert.NoError(t, err)
	assert.EQ(t, b.Length(), int64(0))

	got, gerr := b.GetPtr(0, 0)
	assert.NoError(t, gerr)
	assert.EQ(t, len(got), 0)
}
