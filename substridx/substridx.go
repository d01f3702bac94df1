// Package substridx indexes every fixed-length substring of a fingerprint
// table, grouping start positions by fingerprint. It answers questions
// like "how many distinct substrings of length L does the text have" and
// "where else does the substring starting at l occur" without any direct
// string comparison.
package substridx

import (
	"errors"
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/strhash-go/strhash"
	"github.com/strhash-go/strhash/hashkey"
)

// ErrNilTable is returned when New is given a nil table.
var ErrNilTable = errors.New("table must not be nil")

// LengthError indicates a window length outside (0, text length].
type LengthError struct {
	Length int
	N      int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("window length %d invalid for text of length %d", e.Length, e.N)
}

// entry chains fingerprints whose combined map keys collide. The full
// fingerprint is kept so a key collision never merges distinct substrings.
type entry struct {
	fp        strhash.Fingerprint
	positions *roaring.Bitmap
}

// Index groups the start positions of every length-L window of a table
// by fingerprint. Like the table it reads, an Index is immutable after
// New and safe for concurrent readers.
type Index struct {
	table   *strhash.Table
	length  int
	buckets map[uint64][]*entry
	windows int
}

// New scans all windows of the given length across t's text and indexes
// their start positions by fingerprint.
func New(t *strhash.Table, length int) (*Index, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if length <= 0 || length > t.Len() {
		return nil, &LengthError{Length: length, N: t.Len()}
	}

	ix := &Index{
		table:   t,
		length:  length,
		buckets: make(map[uint64][]*entry),
		windows: t.Len() - length + 1,
	}

	for l := 0; l < ix.windows; l++ {
		fp, err := t.Fingerprint(l, l+length-1)
		if err != nil {
			return nil, err
		}
		ix.add(fp, uint32(l))
	}

	return ix, nil
}

func (ix *Index) add(fp strhash.Fingerprint, pos uint32) {
	key := hashkey.ForFingerprint(fp)
	for _, e := range ix.buckets[key] {
		if e.fp.Equal(fp) {
			e.positions.Add(pos)
			return
		}
	}
	e := &entry{fp: fp, positions: roaring.New()}
	e.positions.Add(pos)
	ix.buckets[key] = append(ix.buckets[key], e)
}

// lookup finds the entry for the window starting at l.
func (ix *Index) lookup(l int) (*entry, error) {
	fp, err := ix.table.Fingerprint(l, l+ix.length-1)
	if err != nil {
		return nil, err
	}
	for _, e := range ix.buckets[hashkey.ForFingerprint(fp)] {
		if e.fp.Equal(fp) {
			return e, nil
		}
	}
	// Unreachable: every valid window start was indexed by New.
	return nil, &strhash.RangeError{Low: l, High: l + ix.length - 1, N: ix.table.Len()}
}

// Length returns the window length of the index.
func (ix *Index) Length() int {
	return ix.length
}

// Windows returns the number of indexed windows, duplicates included.
func (ix *Index) Windows() int {
	return ix.windows
}

// Distinct returns the number of distinct fingerprints among all windows.
func (ix *Index) Distinct() int {
	var n int
	for _, chain := range ix.buckets {
		n += len(chain)
	}
	return n
}

// Positions returns all start positions whose window fingerprints equal
// the window starting at l. The result is a copy; callers may mutate it.
func (ix *Index) Positions(l int) (*roaring.Bitmap, error) {
	e, err := ix.lookup(l)
	if err != nil {
		return nil, err
	}
	return e.positions.Clone(), nil
}

// Count returns the number of occurrences of the window starting at l.
func (ix *Index) Count(l int) (int, error) {
	e, err := ix.lookup(l)
	if err != nil {
		return 0, err
	}
	return int(e.positions.GetCardinality()), nil
}

// All iterates over every distinct fingerprint with its occurrence count.
// Iteration order is unspecified.
func (ix *Index) All() iter.Seq2[strhash.Fingerprint, int] {
	return func(yield func(strhash.Fingerprint, int) bool) {
		for _, chain := range ix.buckets {
			for _, e := range chain {
				if !yield(e.fp, int(e.positions.GetCardinality())) {
					return
				}
			}
		}
	}
}
