package cellgo

import (
	"slices"

	"github.com/hupe1980/cellgo/bitmap"
)

// indexComparator returns a comparator ordering row indices by the named
// key fields, most significant first. Panics if a key names no field.
func (c *Cells) indexComparator(keys []string) func(l, r int) int {
	cols := make([]FieldData, len(keys))
	for i, key := range keys {
		cols[i] = c.mustField(key)
	}
	return func(l, r int) int {
		for _, col := range cols {
			if v := col.compareRows(l, r); v != 0 {
				return v
			}
		}
		return 0
	}
}

// keyColumns resolves the named key fields. Panics if one is missing.
func (c *Cells) keyColumns(keys []string) []FieldData {
	cols := make([]FieldData, len(keys))
	for i, key := range keys {
		cols[i] = c.mustField(key)
	}
	return cols
}

func rowsEqual(cols []FieldData, i, j int) bool {
	for _, col := range cols {
		if !col.equalRows(i, j) {
			return false
		}
	}
	return true
}

// sortIndex returns the permutation that sorts the records by keys. The
// underlying sort is stable, so rows that compare equal on all keys keep
// their input order in the permutation.
func (c *Cells) sortIndex(keys []string) []int {
	idx := make([]int, c.Len())
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, c.indexComparator(keys))
	return idx
}

// IsSorted reports whether the records are sorted by keys. See Sort.
func (c *Cells) IsSorted(keys []string) bool {
	cmp := c.indexComparator(keys)
	for i := 1; i < c.Len(); i++ {
		if cmp(i-1, i) > 0 {
			return false
		}
	}
	return true
}

// Sort orders the records by keys. If two records are equal on the first
// key they are ordered by the second, and so on. Records equal on all keys
// may appear in any order relative to each other.
//
// Enumeration tables are lookup tables, not record data, and stay as they
// are.
func (c *Cells) Sort(keys []string) {
	idx := c.sortIndex(keys)
	for _, data := range c.fields {
		data.permute(idx)
	}
}

// Sorted returns a copy of the cells, sorted as if by Sort.
func (c *Cells) Sorted(keys []string) *Cells {
	sorted := c.Clone()
	sorted.Sort(keys)
	return sorted
}

// IdentifyGroups returns the offsets beginning each run of records that are
// equal on keys, terminated by the record count, or nil when there are no
// records. For each pair of adjacent offsets, all records in that range are
// equal on keys, and the first record of the next range is not.
//
// This is best used with sorted cells, but that is not required.
func (c *Cells) IdentifyGroups(keys []string) []int {
	if c.IsEmpty() {
		return nil
	}
	cols := c.keyColumns(keys)
	groups := []int{0}
	icmp := 0
	for i := 1; i < c.Len(); i++ {
		if !rowsEqual(cols, i, icmp) {
			groups = append(groups, i)
			icmp = i
		}
	}
	return append(groups, c.Len())
}

// CountDistinct returns the number of distinct key tuples grouped on keys.
// It sorts a projection of the key columns and counts runs, so float keys
// group by the physical kernel rather than by native comparison.
func (c *Cells) CountDistinct(keys []string) int {
	if c.Len() <= 1 {
		return c.Len()
	}

	fields := make(map[string]FieldData, len(keys))
	for _, key := range keys {
		fields[key] = c.mustField(key).Clone()
	}
	proj := NewCells(fields)
	proj.Sort(keys)

	cols := proj.keyColumns(keys)
	count := 1
	icmp := 0
	for i := 1; i < proj.Len(); i++ {
		if !rowsEqual(cols, i, icmp) {
			count++
			icmp = i
		}
	}
	return count
}

// Dedup returns the records whose key tuple appears for the first time, in
// input order, such that c.Dedup(keys).CountDistinct(keys) equals the result
// length. The result carries no enumerations.
func (c *Cells) Dedup(keys []string) *Cells {
	if c.IsEmpty() {
		return c.Clone()
	}

	idx := c.sortIndex(keys)
	cols := c.keyColumns(keys)

	keep := bitmap.New(c.Len())
	keep.Add(idx[0])

	icmp := 0
	for i := 1; i < len(idx); i++ {
		if !rowsEqual(cols, idx[i], idx[icmp]) {
			icmp = i
			keep.Add(idx[i])
		}
	}
	return c.Filter(keep)
}
