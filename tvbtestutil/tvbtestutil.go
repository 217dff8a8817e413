// Package tvbtestutil registers github.com/grailbio/testutil/h
// comparators for tvb types, so that tests can assert.EQ two
// *tvb.Buffer values (or *tvb.Error values) by content rather than by
// pointer identity.
package tvbtestutil

import (
	"bytes"
	"sync"

	"github.com/grailbio/testutil/h"

	"github.com/Schaudge/tvb/tvb"
)

var once sync.Once

// RegisterComparators adds h comparators for *tvb.Buffer and *tvb.Error.
// It is threadsafe and idempotent, like
// htstestutil.RegisterSAMRecordComparator.
func RegisterComparators() {
	once.Do(func() {
		h.RegisterComparator(func(b0, b1 *tvb.Buffer) (int, error) {
			if bufferEqual(b0, b1) {
				return 0, nil
			}
			return 1, nil
		})
		h.RegisterComparator(func(e0, e1 *tvb.Error) (int, error) {
			if errorEqual(e0, e1) {
				return 0, nil
			}
			return 1, nil
		})
	})
}

func bufferEqual(b0, b1 *tvb.Buffer) bool {
	if b0 == nil || b1 == nil {
		return b0 == b1
	}
	if b0.Length() != b1.Length() || b0.ReportedLength() != b1.ReportedLength() {
		return false
	}
	d0, err0 := b0.GetPtr(0, b0.Length())
	d1, err1 := b1.GetPtr(0, b1.Length())
	if err0 != nil || err1 != nil {
		return err0 == nil && err1 == nil
	}
	return bytes.Equal(d0, d1)
}

func errorEqual(e0, e1 *tvb.Error) bool {
	if e0 == nil || e1 == nil {
		return e0 == e1
	}
	return e0.Kind == e1.Kind && e0.Offset == e1.Offset && e0.Length == e1.Length
}
