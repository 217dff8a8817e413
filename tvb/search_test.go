package tvb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

func TestFindSubBuffer(t *testing.T) {
	b := newTestReal(t, []byte("the quick brown fox"), 19)
	assert.EQ(t, b.FindSubBuffer(0, -1, []byte("brown")), int64(10))
	assert.EQ(t, b.FindSubBuffer(0, -1, []byte("slow")), int64(-1))
}

func TestFindSubBufferEmptyNeedle(t *testing.T) {
	b := newTestReal(t, []byte("abc"), 3)
	assert.EQ(t, b.FindSubBuffer(1, -1, nil), int64(1))
}

func TestFindSubBufferBoundedByMaxLength(t *testing.T) {
	b := newTestReal(t, []byte("aXbXc"), 5)
	assert.EQ(t, b.FindSubBuffer(0, 1, []byte("X")), int64(-1))
	assert.EQ(t, b.FindSubBuffer(0, 2, []byte("X")), int64(1))
}
