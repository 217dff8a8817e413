package tvb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

func TestCompositeFinalizeAndRead(t *testing.T) {
	a := newTestReal(t, []byte("abc"), 3)
	b := newTestReal(t, []byte("defgh"), 5)

	c := NewComposite()
	c.Append(a)
	c.Append(b)
	c.Finalize()

	assert.EQ(t, c.Length(), int64(8))
	assert.EQ(t, c.ReportedLength(), int64(8))

	v, err := c.GetU8(0)
	assert.NoError(t, err)
	assert.EQ(t, v, byte('a'))

	v, err = c.GetU8(3)
	assert.NoError(t, err)
	assert.EQ(t, v, byte('d'))

	v, err = c.GetU8(7)
	assert.NoError(t, err)
	assert.EQ(t, v, byte('h'))
}

func TestCompositeStraddlingReadFlattens(t *testing.T) {
	a := newTestReal(t, []byte{0x00, 0x01}, 2)
	b := newTestReal(t, []byte{0x02, 0x03}, 2)

	c := NewComposite()
	c.Append(a)
	c.Append(b)
	c.Finalize()

	assert.True(t, !c.flattened, "must not flatten until a straddling read forces it")

	v, err := c.GetU32BE(0)
	assert.NoError(t, err)
	assert.EQ(t, v, uint32(0x00010203))
	assert.True(t, c.flattened, "a read spanning both members must flatten")
}

func TestCompositePrependOrdering(t *testing.T) {
	a := newTestReal(t, []byte("world"), 5)
	b := newTestReal(t, []byte("hello "), 6)

	c := NewComposite()
	c.Append(a)
	c.Prepend(b)
	c.Finalize()

	data, err := c.GetPtr(0, 11)
	assert.NoError(t, err)
	assert.EQ(t, string(data), "hello world")
}

func TestCompositeSetReportedLengthRaises(t *testing.T) {
	a := newTestReal(t, []byte("abc"), 3)
	c := NewComposite()
	c.Append(a)
	c.Finalize()

	err := c.SetReportedLength(2)
	assert.NotNil(t, err)
}

func TestCompositeAppendAfterFinalizePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic appending to a finalized composite")
		}
	}()
	a := newTestReal(t, []byte("abc"), 3)
	c := NewComposite()
	c.Append(a)
	c.Finalize()
	c.Append(a)
}
