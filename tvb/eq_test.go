package tvb

import (
	"testing"

	"github.com/grailbio/testutil/assert"
)

func TestMemeql(t *testing.T) {
	b := newTestReal(t, []byte("abcdef"), 6)
	ok, err := b.Memeql(2, []byte("cde"))
	assert.NoError(t, err)
	assert.True(t, ok, "")

	ok, err = b.Memeql(2, []byte("xyz"))
	assert.NoError(t, err)
	assert.True(t, !ok, "")
}

func TestMemeqlOutOfBoundsIsNoExceptionNotEqual(t *testing.T) {
	b := newTestReal(t, []byte("ab"), 2)
	ok, err := b.Memeql(0, []byte("abc"))
	assert.NoError(t, err)
	assert.True(t, !ok, "insufficient bytes counts as not-equal, not an error")
}

func TestStrncaseeql(t *testing.T) {
	b := newTestReal(t, []byte("HELLO"), 5)
	ok, err := b.Strncaseeql(0, "hello")
	assert.NoError(t, err)
	assert.True(t, ok, "")
}
