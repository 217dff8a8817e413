package tvb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

func TestASCIIFormatterFormatText(t *testing.T) {
	f := ASCIIFormatter{}
	out := f.FormatText([]byte{'h', 'i', 0x01, 0x7f, ' '})
	assert.EQ(t, out, "hi.. ")
}

func TestASCIIFormatterFormatBytesPunct(t *testing.T) {
	f := ASCIIFormatter{}
	out := f.FormatBytesPunct([]byte{0xde, 0xad, 0xbe, 0xef}, ':')
	assert.EQ(t, out, "de:ad:be:ef")
}

func TestBufferFormatText(t *testing.T) {
	b := newTestReal(t, []byte("hi\x01\x7f "), 5)
	out, err := b.FormatText(0, 5, nil)
	assert.NoError(t, err)
	assert.EQ(t, out, "hi.. ")
}

func TestFormatStringzPad(t *testing.T) {
	b := newTestReal(t, []byte("abc\x00def"), 7)
	out, err := b.FormatStringzPad(0, 7, nil)
	assert.NoError(t, err)
	assert.EQ(t, out, "abc")
}

func TestBytesToStrAndPunct(t *testing.T) {
	b := newTestReal(t, []byte{0xde, 0xad, 0xbe, 0xef}, 4)

	out, err := b.BytesToStr(0, 4, nil)
	assert.NoError(t, err)
	assert.EQ(t, out, "....")

	punct, err := b.BytesToStrPunct(0, 4, nil, '-')
	assert.NoError(t, err)
	assert.EQ(t, punct, "de-ad-be-ef")
}
