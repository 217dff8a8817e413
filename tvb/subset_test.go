package tvb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

func TestNewSubsetInherited(t *testing.T) {
	backing := newTestReal(t, []byte("0123456789"), 10)
	sub, err := NewSubset(backing, 2, -1, -1)
	assert.NoError(t, err)
	assert.EQ(t, sub.Length(), int64(8))
	assert.EQ(t, sub.ReportedLength(), int64(8))

	v, err := sub.GetU8(0)
	assert.NoError(t, err)
	assert.EQ(t, v, byte('2'))
}

func TestNewSubsetZeroLengthAtEOF(t *testing.T) {
	backing := newTestReal(t, make([]byte, 10), 10)
	sub, err := NewSubset(backing, 10, 0, 0)
	assert.NoError(t, err)
	assert.EQ(t, sub.Length(), int64(0))

	_, err = sub.GetU8(0)
	assert.NotNil(t, err)
	assert.True(t, IsReportedBounds(err), "")
}

func TestNewSubsetNegativeOffsetAndSentinelLength(t *testing.T) {
	backing := newTestReal(t, []byte("abcdefghij"), 10)
	sub, err := NewSubset(backing, -4, -1, -1)
	assert.NoError(t, err)
	assert.EQ(t, sub.Length(), int64(4))
	data, err := sub.GetPtr(0, 4)
	assert.NoError(t, err)
	assert.EQ(t, string(data), "ghij")
}

func TestNewSubsetReportedLengthBeyondCaptured(t *testing.T) {
	backing := newTestReal(t, []byte("abcd"), 20)
	sub, err := NewSubset(backing, 0, 4, -1)
	assert.NoError(t, err)
	assert.EQ(t, sub.Length(), int64(4))
	assert.EQ(t, sub.ReportedLength(), int64(20))

	_, err = sub.GetU8(10)
	assert.NotNil(t, err)
	assert.True(t, IsCapturedBounds(err), "inside reported length but past captured length")
}

func TestSubsetUsageKeepsBackingAlive(t *testing.T) {
	released := false
	backing, err := NewReal([]byte("xyz"), 3, -1, func() { released = true })
	assert.NoError(t, err)
	sub, err := NewSubset(backing, 0, -1, -1)
	assert.NoError(t, err)

	backing.Free()
	assert.True(t, !released, "backing must stay alive while the subset holds a reference")

	sub.Free()
	assert.True(t, released, "backing is released once the subset's reference is dropped")
}
