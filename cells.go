package cellgo

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hupe1980/cellgo/bitmap"
)

// Cells maps field names to equally long typed columns. Row i of every
// column together forms record i.
//
// A field may carry an enumeration: a side table of variant values, in which
// case the field's own column holds unsigned indices into that table.
type Cells struct {
	fields map[string]FieldData
	enums  map[string]FieldData
}

// NewCells wraps the given columns. The map is taken over by the cells, not
// copied.
//
// Panics if the columns do not all have the same number of cells.
func NewCells(fields map[string]FieldData) *Cells {
	if fields == nil {
		fields = map[string]FieldData{}
	}
	names := slices.Sorted(maps.Keys(fields))
	if len(names) > 1 {
		for _, name := range names[1:] {
			if fields[name].Len() != fields[names[0]].Len() {
				panic(fmt.Sprintf("cellgo: field %q has %d cells, field %q has %d",
					name, fields[name].Len(), names[0], fields[names[0]].Len()))
			}
		}
	}
	return &Cells{fields: fields, enums: map[string]FieldData{}}
}

// WithEnumerations attaches enumeration side tables, replacing any previous
// ones, and returns the receiver. The key of each entry names the field
// whose column holds indices into the entry's variants.
//
// The tables are not validated here. Resolving a field whose column is not
// unsigned panics; indices with no matching variant resolve as invalid rows.
func (c *Cells) WithEnumerations(enums map[string]FieldData) *Cells {
	c.enums = enums
	return c
}

// Fields returns the field names in ascending order.
func (c *Cells) Fields() []string {
	return slices.Sorted(maps.Keys(c.fields))
}

// NumFields returns the number of fields.
func (c *Cells) NumFields() int { return len(c.fields) }

// Field returns the column of the named field.
func (c *Cells) Field(name string) (FieldData, bool) {
	data, ok := c.fields[name]
	return data, ok
}

// Enumeration returns the variants table attached to the named field.
func (c *Cells) Enumeration(name string) (FieldData, bool) {
	data, ok := c.enums[name]
	return data, ok
}

// Len returns the number of records. A Cells with no fields has length 0.
func (c *Cells) Len() int {
	for _, data := range c.fields {
		return data.Len()
	}
	return 0
}

// IsEmpty reports whether there are no records.
func (c *Cells) IsEmpty() bool { return c.Len() == 0 }

func (c *Cells) mustField(name string) FieldData {
	data, ok := c.fields[name]
	if !ok {
		panic(fmt.Sprintf("cellgo: unknown field %q (fields are %v)", name, c.Fields()))
	}
	return data
}

// ResolveEnumeration joins the named field's index column with its
// enumeration table. It returns the column of indexed variant values and a
// validity selection, set at row i exactly when the stored index addressed a
// variant. Invalid rows hold the variant type's zero value. The third return
// is false when the field has no enumeration.
//
// Panics if the field is missing or its column is not an unsigned kind.
func (c *Cells) ResolveEnumeration(name string) (FieldData, *bitmap.Bitmap, bool) {
	variants, ok := c.enums[name]
	if !ok {
		return nil, nil, false
	}
	keys := c.mustField(name)
	idx, ok := keys.indexValues()
	if !ok {
		panic(fmt.Sprintf("cellgo: enumerated field %q must hold unsigned indices, not %s", name, keys.Kind()))
	}
	resolved, valid := variants.gather(idx)
	return resolved, valid, true
}

// Domain returns the value range of every field, ordered by field name.
func (c *Cells) Domain() []FieldDomain {
	out := make([]FieldDomain, 0, len(c.fields))
	for _, name := range c.Fields() {
		if r, ok := c.fields[name].Domain(); ok {
			out = append(out, FieldDomain{Field: name, Range: &r})
		} else {
			out = append(out, FieldDomain{Field: name})
		}
	}
	return out
}

// CopyFrom copies data from the argument. Common fields are overwritten at
// common indices; a field of other that is at least as long as the
// receiver's replaces it outright. Fields only present in other are added.
func (c *Cells) CopyFrom(other *Cells) {
	for name, data := range other.fields {
		if mine, ok := c.fields[name]; ok {
			mine.copyFrom(data)
		} else {
			c.fields[name] = data.Clone()
		}
	}
}

// Truncate shortens the cells, keeping the first n records and dropping the
// rest.
func (c *Cells) Truncate(n int) {
	for _, data := range c.fields {
		data.Truncate(n)
	}
}

// Extend appends the records of other.
//
// Panics if the two field sets differ, or if a shared field holds a
// different physical type on each side.
func (c *Cells) Extend(other *Cells) {
	for name, data := range c.fields {
		theirs, ok := other.fields[name]
		if !ok {
			panic(fmt.Sprintf("cellgo: extend source missing field %q", name))
		}
		data.Extend(theirs)
	}
	if len(other.fields) != len(c.fields) {
		for _, name := range other.Fields() {
			if _, ok := c.fields[name]; !ok {
				panic(fmt.Sprintf("cellgo: extend source has unknown field %q", name))
			}
		}
	}
}

// AddField adds one more column. The column must be as long as the existing
// records, unless there are no fields yet.
func (c *Cells) AddField(name string, data FieldData) error {
	if len(c.fields) > 0 && data.Len() != c.Len() {
		return &ErrLengthMismatch{Field: name, Expected: c.Len(), Actual: data.Len()}
	}
	if _, ok := c.fields[name]; ok {
		return fmt.Errorf("%w: %q", ErrFieldExists, name)
	}
	c.fields[name] = data
	return nil
}

// Clone returns an independent copy, enumerations included.
func (c *Cells) Clone() *Cells {
	fields := make(map[string]FieldData, len(c.fields))
	for name, data := range c.fields {
		fields[name] = data.Clone()
	}
	enums := make(map[string]FieldData, len(c.enums))
	for name, data := range c.enums {
		enums[name] = data.Clone()
	}
	clone := NewCells(fields)
	clone.enums = enums
	return clone
}

// Filter returns the subset of records at the selected rows. The result
// carries no enumerations.
//
// Panics if the selection length differs from the record count.
func (c *Cells) Filter(sel *bitmap.Bitmap) *Cells {
	if sel.Len() != c.Len() {
		panic(fmt.Sprintf("cellgo: selection over %d records applied to %d", sel.Len(), c.Len()))
	}
	fields := make(map[string]FieldData, len(c.fields))
	for name, data := range c.fields {
		fields[name] = data.Filter(sel)
	}
	return NewCells(fields)
}

// Projection returns a copy holding only the named fields, without
// enumerations. It returns ErrFieldNotFound if any name is absent.
func (c *Cells) Projection(names ...string) (*Cells, error) {
	fields := make(map[string]FieldData, len(names))
	for _, name := range names {
		data, ok := c.fields[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
		}
		fields[name] = data.Clone()
	}
	return NewCells(fields), nil
}

// Equal reports whether other holds the same fields with cell-for-cell equal
// columns under the physical kernel. Enumeration tables do not participate.
func (c *Cells) Equal(other *Cells) bool {
	for name, mine := range c.fields {
		theirs, ok := other.fields[name]
		if !ok || !mine.Equal(theirs) {
			return false
		}
	}
	return len(c.fields) == len(other.fields)
}
