package tvb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

func TestGetBitsAlignedMatchesGetU8(t *testing.T) {
	b := newTestReal(t, []byte{0xAB, 0xCD}, 2)
	v8, err := b.GetU8(1)
	assert.NoError(t, err)
	bits, err := b.GetBits(8, 8)
	assert.NoError(t, err)
	assert.EQ(t, bits, uint64(v8))
}

func TestGetBitsUnaligned(t *testing.T) {
	b := newTestReal(t, []byte{0xB4}, 1)
	v, err := b.GetBits(2, 4)
	assert.NoError(t, err)
	assert.EQ(t, v, uint64(0xD))
}

func TestGetBitsSpillsAcrossByteBoundary(t *testing.T) {
	// 0xF0, 0x0F: bit 4 through bit 11 (8 bits) straddles both bytes and
	// should read 0000 0000 -> wait, compute directly: bits [4,12) of
	// 11110000 00001111 are 0000 0000.
	b := newTestReal(t, []byte{0xF0, 0x0F}, 2)
	v, err := b.GetBits(4, 8)
	assert.NoError(t, err)
	assert.EQ(t, v, uint64(0x00))
}

func TestGetBitsNinthOctetSpillover(t *testing.T) {
	// bitOffset=1, width=64 needs 65 total bits -> 9 octets.
	data := make([]byte, 9)
	for i := range data {
		data[i] = 0xFF
	}
	data[8] = 0x00
	b := newTestReal(t, data, 9)
	v, err := b.GetBits(1, 64)
	assert.NoError(t, err)
	// Top 63 bits all 1, bottom bit from the ninth octet's MSB (0) -> even.
	assert.True(t, v&1 == 0, "low bit should come from the all-zero ninth octet")
}

func TestGetBitsWidthOutOfRangePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for width 0")
		}
	}()
	b := newTestReal(t, []byte{0x00}, 1)
	b.GetBits(0, 0)
}

func TestGetBitsLEUnimplemented(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic: little-endian bit ordering is not implemented")
		}
	}()
	b := newTestReal(t, []byte{0x00}, 1)
	b.GetBitsLE(0, 4)
}
