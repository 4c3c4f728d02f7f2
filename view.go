package cellgo

import "fmt"

// CellsView is a window over a run of records, restricted to a subset of the
// fields. It compares a section of one Cells against a section of another
// without materializing either.
type CellsView struct {
	cells *Cells
	keys  []string
	lo    int
	hi    int
}

// View returns a view over records [lo, hi), restricted to the named key
// fields. Panics if a key names no field.
func (c *Cells) View(keys []string, lo, hi int) *CellsView {
	for _, key := range keys {
		if _, ok := c.fields[key]; !ok {
			panic(fmt.Sprintf("cellgo: cannot construct view: key %q not found (fields are %v)", key, c.Fields()))
		}
	}
	return &CellsView{cells: c, keys: keys, lo: lo, hi: hi}
}

// Len returns the number of records in the window.
func (v *CellsView) Len() int { return v.hi - v.lo }

// Keys returns the field names the view is restricted to.
func (v *CellsView) Keys() []string { return v.keys }

// Equal reports whether both windows are the same length, hold kernel-equal
// cells for every key field of v, and reference the same number of keys. A
// key field missing from other, or held at a different physical type, makes
// the views unequal.
func (v *CellsView) Equal(other *CellsView) bool {
	if v.Len() != other.Len() {
		return false
	}
	for _, key := range v.keys {
		mine := v.cells.fields[key]
		theirs, ok := other.cells.fields[key]
		if !ok {
			return false
		}
		if !mine.windowEqual(v.lo, theirs, other.lo, v.Len()) {
			return false
		}
	}
	return len(v.keys) == len(other.keys)
}
