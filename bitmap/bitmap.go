// Package bitmap provides the row-selection bitmap used by the cell engine.
//
// A Bitmap wraps a Roaring bitmap and carries the record count it was built
// for. The count bounds negation and saturation and lets combining
// operations assert that both sides describe the same record set, which a
// plain sparse bitmap cannot express.
package bitmap

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a set of selected rows within a fixed number of records.
type Bitmap struct {
	rb *roaring.Bitmap
	n  int
}

// New returns an empty bitmap over n records.
func New(n int) *Bitmap {
	if n < 0 {
		panic(fmt.Sprintf("bitmap: negative record count %d", n))
	}
	return &Bitmap{rb: roaring.New(), n: n}
}

// Full returns a bitmap over n records with every row selected.
func Full(n int) *Bitmap {
	b := New(n)
	if n > 0 {
		b.rb.AddRange(0, uint64(n))
	}
	return b
}

// Len returns the record count the bitmap was built for, not the number of
// selected rows.
func (b *Bitmap) Len() int {
	return b.n
}

// Cardinality returns the number of selected rows.
func (b *Bitmap) Cardinality() int {
	return int(b.rb.GetCardinality())
}

// IsEmpty reports whether no row is selected.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Add selects row i. Panics if i is outside [0, Len()).
func (b *Bitmap) Add(i int) {
	b.check(i)
	b.rb.Add(uint32(i))
}

// Remove deselects row i. Panics if i is outside [0, Len()).
func (b *Bitmap) Remove(i int) {
	b.check(i)
	b.rb.Remove(uint32(i))
}

// Contains reports whether row i is selected. Panics if i is outside
// [0, Len()).
func (b *Bitmap) Contains(i int) bool {
	b.check(i)
	return b.rb.Contains(uint32(i))
}

// Clone returns an independent copy.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{rb: b.rb.Clone(), n: b.n}
}

// And intersects b with other in place. Panics if the record counts differ.
func (b *Bitmap) And(other *Bitmap) {
	b.checkLen(other)
	b.rb.And(other.rb)
}

// Or unions other into b in place. Panics if the record counts differ.
func (b *Bitmap) Or(other *Bitmap) {
	b.checkLen(other)
	b.rb.Or(other.rb)
}

// Negate flips the selection of every row in [0, Len()) in place.
func (b *Bitmap) Negate() {
	if b.n > 0 {
		b.rb.Flip(0, uint64(b.n))
	}
}

// Rows iterates the selected rows in ascending order.
func (b *Bitmap) Rows() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// ToArray returns the selected rows in ascending order.
func (b *Bitmap) ToArray() []int {
	out := make([]int, 0, b.Cardinality())
	for i := range b.Rows() {
		out = append(out, i)
	}
	return out
}

// String renders the selection as one character per record, '1' for selected
// rows, in row order.
func (b *Bitmap) String() string {
	buf := make([]byte, b.n)
	for i := range buf {
		buf[i] = '0'
	}
	for i := range b.Rows() {
		buf[i] = '1'
	}
	return string(buf)
}

func (b *Bitmap) check(i int) {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("bitmap: row %d out of range [0, %d)", i, b.n))
	}
}

func (b *Bitmap) checkLen(other *Bitmap) {
	if b.n != other.n {
		panic(fmt.Sprintf("bitmap: record count mismatch %d != %d", b.n, other.n))
	}
}
