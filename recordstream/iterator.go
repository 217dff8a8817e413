package recordstream

import (
	"io"

	"github.com/Schaudge/tvb/tvb"
)

// Iterator walks every record in a Reader until the stream ends or an
// error occurs, mirroring bam.Iterator's Next/Record/Error/Close shape
// (recordstream has no chunk index to seek over, so it is the
// single-chunk, whole-stream case of that pattern).
type Iterator struct {
	r   *Reader
	rec *tvb.Buffer
	err error
}

// NewIterator returns an Iterator over every record in r.
func NewIterator(r *Reader) *Iterator {
	return &Iterator{r: r}
}

// Next advances the Iterator to the next record. It returns false once
// the stream ends or an error occurs; call Error to distinguish the
// two cases.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	it.rec, it.err = it.r.Read()
	return it.err == nil
}

// Error returns the first non-EOF error encountered during iteration.
func (it *Iterator) Error() error {
	if it.err == io.EOF {
		return nil
	}
	return it.err
}

// Record returns the buffer most recently produced by Next.
func (it *Iterator) Record() *tvb.Buffer { return it.rec }

// Close releases the record most recently produced by Next, if any,
// via FreeChain, and returns any pending error. Records returned by
// earlier Next calls are not released by Close.
func (it *Iterator) Close() error {
	if it.rec != nil {
		it.rec.FreeChain()
		it.rec = nil
	}
	return it.Error()
}
