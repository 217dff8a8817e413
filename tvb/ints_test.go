package tvb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

func TestIntAccessorsRoundTrip(t *testing.T) {
	b := newTestReal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, 8)

	v16, err := b.GetU16BE(0)
	assert.NoError(t, err)
	assert.EQ(t, v16, uint16(0x0102))

	v16le, err := b.GetU16LE(0)
	assert.NoError(t, err)
	assert.EQ(t, v16le, uint16(0x0201))

	v24, err := b.GetU24BE(0)
	assert.NoError(t, err)
	assert.EQ(t, v24, uint32(0x010203))

	v24le, err := b.GetU24LE(0)
	assert.NoError(t, err)
	assert.EQ(t, v24le, uint32(0x030201))

	v32, err := b.GetU32BE(0)
	assert.NoError(t, err)
	assert.EQ(t, v32, uint32(0x01020304))

	v64, err := b.GetU64BE(0)
	assert.NoError(t, err)
	assert.EQ(t, v64, uint64(0x0102030405060708))
}

func TestIntAccessorPastEndRaises(t *testing.T) {
	b := newTestReal(t, []byte{0x01, 0x02}, 2)
	_, err := b.GetU32BE(0)
	assert.NotNil(t, err)
	assert.True(t, IsReportedBounds(err), "")
}

func TestGetU8CapturedVsReported(t *testing.T) {
	b := newTestReal(t, []byte{0x01, 0x02}, 10)
	_, err := b.GetU8(5)
	assert.NotNil(t, err)
	assert.True(t, IsCapturedBounds(err), "within reported length, past captured length")

	_, err = b.GetU8(15)
	assert.NotNil(t, err)
	assert.True(t, IsReportedBounds(err), "past reported length")
}
