package cellgo

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/hupe1980/cellgo/bitmap"
	"github.com/hupe1980/cellgo/physical"
	"github.com/hupe1980/cellgo/query"
)

// FieldData is one typed column of values for a single field. The concrete
// types behind it form a closed set, one per physical.Kind; values move in
// and out through the typed constructors and the Values helper.
type FieldData interface {
	// Kind returns the physical type of the column.
	Kind() physical.Kind

	// Len returns the number of cells.
	Len() int

	// Truncate keeps the first n cells and drops the rest. Truncating beyond
	// the current length is a no-op.
	Truncate(n int)

	// Extend appends the cells of other. It panics when other holds a
	// different physical type.
	Extend(other FieldData)

	// Slice returns a copy of the cells in [start, start+length).
	Slice(start, length int) FieldData

	// Filter returns a copy holding the cells at the selected rows, in
	// ascending row order.
	Filter(sel *bitmap.Bitmap) FieldData

	// Domain returns the minimum and maximum cell values. The second return
	// is false for an empty column.
	Domain() (Range, bool)

	// Clone returns an independent copy of the column.
	Clone() FieldData

	// Equal reports whether other holds the same cells, compared with the
	// physical kernel. Columns of different kinds are never equal.
	Equal(other FieldData) bool

	compareRows(i, j int) int
	equalRows(i, j int) bool
	permute(idx []int)
	windowEqual(lo int, other FieldData, olo, n int) bool
	matchEquality(op query.EqualityOp, value query.Literal) *bitmap.Bitmap
	matchMembership(op query.SetMembershipOp, members query.Members) *bitmap.Bitmap
	indexValues() ([]int, bool)
	variantIndex(value query.Literal) (int, bool)
	gather(idx []int) (FieldData, *bitmap.Bitmap)
	copyFrom(other FieldData)
}

// Values returns the backing slice of a column as its native type, or false
// when T is not the column's native type. The slice is shared with the
// column, not copied. Variable-length columns are addressed as [][]byte
// via T = []byte.
func Values[T any](data FieldData) ([]T, bool) {
	switch c := data.(type) {
	case *column[T]:
		return c.values, true
	case *bytesColumn:
		values, ok := any(c.values).([]T)
		return values, ok
	}
	return nil, false
}

// colOps extends the physical kernel of one type with conversions between
// native values and query literals. index is non-nil only for unsigned
// kinds, which may serve as enumeration index columns.
type colOps[T any] struct {
	physical.Ops[T]
	fromLiteral func(query.Literal) (T, bool)
	toLiteral   func(T) query.Literal
	index       func(T) int
}

// column is the generic fixed-size implementation of FieldData. One
// instantiation per numeric physical kind; variable-length data lives in
// bytesColumn.
type column[T any] struct {
	kind   physical.Kind
	values []T
	ops    colOps[T]
}

// Uint8s wraps values as a uint8 column. The column takes ownership of the
// slice.
func Uint8s(values []uint8) FieldData {
	return &column[uint8]{kind: physical.KindUint8, values: values, ops: colOps[uint8]{
		Ops:         physical.OrderedOps[uint8](),
		fromLiteral: query.Literal.AsUint8,
		toLiteral:   query.Uint8,
		index:       func(v uint8) int { return int(v) },
	}}
}

// Uint16s wraps values as a uint16 column. The column takes ownership of the
// slice.
func Uint16s(values []uint16) FieldData {
	return &column[uint16]{kind: physical.KindUint16, values: values, ops: colOps[uint16]{
		Ops:         physical.OrderedOps[uint16](),
		fromLiteral: query.Literal.AsUint16,
		toLiteral:   query.Uint16,
		index:       func(v uint16) int { return int(v) },
	}}
}

// Uint32s wraps values as a uint32 column. The column takes ownership of the
// slice.
func Uint32s(values []uint32) FieldData {
	return &column[uint32]{kind: physical.KindUint32, values: values, ops: colOps[uint32]{
		Ops:         physical.OrderedOps[uint32](),
		fromLiteral: query.Literal.AsUint32,
		toLiteral:   query.Uint32,
		index:       func(v uint32) int { return int(v) },
	}}
}

// Uint64s wraps values as a uint64 column. The column takes ownership of the
// slice.
func Uint64s(values []uint64) FieldData {
	return &column[uint64]{kind: physical.KindUint64, values: values, ops: colOps[uint64]{
		Ops:         physical.OrderedOps[uint64](),
		fromLiteral: query.Literal.AsUint64,
		toLiteral:   query.Uint64,
		index:       func(v uint64) int { return int(v) },
	}}
}

// Int8s wraps values as an int8 column. The column takes ownership of the
// slice.
func Int8s(values []int8) FieldData {
	return &column[int8]{kind: physical.KindInt8, values: values, ops: colOps[int8]{
		Ops:         physical.OrderedOps[int8](),
		fromLiteral: query.Literal.AsInt8,
		toLiteral:   query.Int8,
	}}
}

// Int16s wraps values as an int16 column. The column takes ownership of the
// slice.
func Int16s(values []int16) FieldData {
	return &column[int16]{kind: physical.KindInt16, values: values, ops: colOps[int16]{
		Ops:         physical.OrderedOps[int16](),
		fromLiteral: query.Literal.AsInt16,
		toLiteral:   query.Int16,
	}}
}

// Int32s wraps values as an int32 column. The column takes ownership of the
// slice.
func Int32s(values []int32) FieldData {
	return &column[int32]{kind: physical.KindInt32, values: values, ops: colOps[int32]{
		Ops:         physical.OrderedOps[int32](),
		fromLiteral: query.Literal.AsInt32,
		toLiteral:   query.Int32,
	}}
}

// Int64s wraps values as an int64 column. The column takes ownership of the
// slice.
func Int64s(values []int64) FieldData {
	return &column[int64]{kind: physical.KindInt64, values: values, ops: colOps[int64]{
		Ops:         physical.OrderedOps[int64](),
		fromLiteral: query.Literal.AsInt64,
		toLiteral:   query.Int64,
	}}
}

// Float32s wraps values as a float32 column. The column takes ownership of
// the slice.
func Float32s(values []float32) FieldData {
	return &column[float32]{kind: physical.KindFloat32, values: values, ops: colOps[float32]{
		Ops:         physical.Float32Ops(),
		fromLiteral: query.Literal.AsFloat32,
		toLiteral:   query.Float32,
	}}
}

// Float64s wraps values as a float64 column. The column takes ownership of
// the slice.
func Float64s(values []float64) FieldData {
	return &column[float64]{kind: physical.KindFloat64, values: values, ops: colOps[float64]{
		Ops:         physical.Float64Ops(),
		fromLiteral: query.Literal.AsFloat64,
		toLiteral:   query.Float64,
	}}
}

func (c *column[T]) Kind() physical.Kind { return c.kind }

func (c *column[T]) Len() int { return len(c.values) }

func (c *column[T]) Truncate(n int) {
	if n < len(c.values) {
		c.values = c.values[:n]
	}
}

func (c *column[T]) Extend(other FieldData) {
	o, ok := other.(*column[T])
	if !ok {
		panic(fmt.Sprintf("cellgo: cannot extend %s column with %s", c.kind, other.Kind()))
	}
	c.values = append(c.values, o.values...)
}

func (c *column[T]) Slice(start, length int) FieldData {
	return &column[T]{kind: c.kind, values: slices.Clone(c.values[start : start+length]), ops: c.ops}
}

func (c *column[T]) Filter(sel *bitmap.Bitmap) FieldData {
	values := make([]T, 0, sel.Cardinality())
	for i := range sel.Rows() {
		values = append(values, c.values[i])
	}
	return &column[T]{kind: c.kind, values: values, ops: c.ops}
}

func (c *column[T]) Domain() (Range, bool) {
	if len(c.values) == 0 {
		return Range{}, false
	}
	lo, hi := c.values[0], c.values[0]
	for _, v := range c.values[1:] {
		if c.ops.Compare(v, lo) < 0 {
			lo = v
		}
		if c.ops.Compare(v, hi) > 0 {
			hi = v
		}
	}
	return Range{Min: c.ops.toLiteral(lo), Max: c.ops.toLiteral(hi)}, true
}

func (c *column[T]) Clone() FieldData {
	return &column[T]{kind: c.kind, values: slices.Clone(c.values), ops: c.ops}
}

func (c *column[T]) Equal(other FieldData) bool {
	o, ok := other.(*column[T])
	if !ok || len(o.values) != len(c.values) {
		return false
	}
	for i, v := range c.values {
		if !c.ops.Equal(v, o.values[i]) {
			return false
		}
	}
	return true
}

func (c *column[T]) compareRows(i, j int) int { return c.ops.Compare(c.values[i], c.values[j]) }

func (c *column[T]) equalRows(i, j int) bool { return c.ops.Equal(c.values[i], c.values[j]) }

func (c *column[T]) permute(idx []int) {
	values := make([]T, len(idx))
	for i, j := range idx {
		values[i] = c.values[j]
	}
	c.values = values
}

func (c *column[T]) windowEqual(lo int, other FieldData, olo, n int) bool {
	o, ok := other.(*column[T])
	if !ok {
		return false
	}
	for i := 0; i < n; i++ {
		if !c.ops.Equal(c.values[lo+i], o.values[olo+i]) {
			return false
		}
	}
	return true
}

func (c *column[T]) matchEquality(op query.EqualityOp, value query.Literal) *bitmap.Bitmap {
	v, ok := c.ops.fromLiteral(value)
	if !ok {
		panic(fmt.Sprintf("cellgo: %s literal compared against %s column", value.Kind(), c.kind))
	}
	sel := bitmap.New(len(c.values))
	for i, cell := range c.values {
		if opMatches(op, c.ops.Compare(cell, v)) {
			sel.Add(i)
		}
	}
	return sel
}

func (c *column[T]) matchMembership(op query.SetMembershipOp, members query.Members) *bitmap.Bitmap {
	keys := make(map[uint64]struct{}, members.Len())
	for _, m := range members.Values() {
		v, ok := c.ops.fromLiteral(m)
		if !ok {
			panic(fmt.Sprintf("cellgo: %s member tested against %s column", m.Kind(), c.kind))
		}
		keys[c.ops.Key(v)] = struct{}{}
	}
	sel := bitmap.New(len(c.values))
	for i, cell := range c.values {
		_, member := keys[c.ops.Key(cell)]
		if member == (op == query.In) {
			sel.Add(i)
		}
	}
	return sel
}

func (c *column[T]) indexValues() ([]int, bool) {
	if c.ops.index == nil {
		return nil, false
	}
	idx := make([]int, len(c.values))
	for i, v := range c.values {
		idx[i] = c.ops.index(v)
	}
	return idx, true
}

func (c *column[T]) variantIndex(value query.Literal) (int, bool) {
	v, ok := c.ops.fromLiteral(value)
	if !ok {
		panic(fmt.Sprintf("cellgo: %s literal scanned against %s variants", value.Kind(), c.kind))
	}
	for i, cell := range c.values {
		if c.ops.Equal(cell, v) {
			return i, true
		}
	}
	return 0, false
}

func (c *column[T]) gather(idx []int) (FieldData, *bitmap.Bitmap) {
	values := make([]T, len(idx))
	valid := bitmap.New(len(idx))
	for i, j := range idx {
		if j >= 0 && j < len(c.values) {
			values[i] = c.values[j]
			valid.Add(i)
		}
	}
	return &column[T]{kind: c.kind, values: values, ops: c.ops}, valid
}

func (c *column[T]) copyFrom(other FieldData) {
	o, ok := other.(*column[T])
	if !ok {
		panic(fmt.Sprintf("cellgo: cannot copy %s column into %s", other.Kind(), c.kind))
	}
	if len(c.values) <= len(o.values) {
		c.values = slices.Clone(o.values)
	} else {
		copy(c.values, o.values)
	}
}

// BytesValues wraps values as a variable-length column. The column takes
// ownership of the outer slice; copies made by Clone, Slice, and Filter are
// deep so that no two columns share cell storage.
func BytesValues(values [][]byte) FieldData {
	return &bytesColumn{values: values}
}

// bytesColumn holds variable-length cells. Ordering is lexicographic over
// the raw bytes.
type bytesColumn struct {
	values [][]byte
}

func cloneBytes(values [][]byte) [][]byte {
	out := make([][]byte, len(values))
	for i, v := range values {
		out[i] = slices.Clone(v)
	}
	return out
}

func (c *bytesColumn) Kind() physical.Kind { return physical.KindBytes }

func (c *bytesColumn) Len() int { return len(c.values) }

func (c *bytesColumn) Truncate(n int) {
	if n < len(c.values) {
		c.values = c.values[:n]
	}
}

func (c *bytesColumn) Extend(other FieldData) {
	o, ok := other.(*bytesColumn)
	if !ok {
		panic(fmt.Sprintf("cellgo: cannot extend bytes column with %s", other.Kind()))
	}
	c.values = append(c.values, cloneBytes(o.values)...)
}

func (c *bytesColumn) Slice(start, length int) FieldData {
	return &bytesColumn{values: cloneBytes(c.values[start : start+length])}
}

func (c *bytesColumn) Filter(sel *bitmap.Bitmap) FieldData {
	values := make([][]byte, 0, sel.Cardinality())
	for i := range sel.Rows() {
		values = append(values, slices.Clone(c.values[i]))
	}
	return &bytesColumn{values: values}
}

func (c *bytesColumn) Domain() (Range, bool) {
	if len(c.values) == 0 {
		return Range{}, false
	}
	lo, hi := c.values[0], c.values[0]
	for _, v := range c.values[1:] {
		if bytes.Compare(v, lo) < 0 {
			lo = v
		}
		if bytes.Compare(v, hi) > 0 {
			hi = v
		}
	}
	return Range{Min: query.Bytes(slices.Clone(lo)), Max: query.Bytes(slices.Clone(hi))}, true
}

func (c *bytesColumn) Clone() FieldData {
	return &bytesColumn{values: cloneBytes(c.values)}
}

func (c *bytesColumn) Equal(other FieldData) bool {
	o, ok := other.(*bytesColumn)
	if !ok || len(o.values) != len(c.values) {
		return false
	}
	for i, v := range c.values {
		if !bytes.Equal(v, o.values[i]) {
			return false
		}
	}
	return true
}

func (c *bytesColumn) compareRows(i, j int) int { return bytes.Compare(c.values[i], c.values[j]) }

func (c *bytesColumn) equalRows(i, j int) bool { return bytes.Equal(c.values[i], c.values[j]) }

func (c *bytesColumn) permute(idx []int) {
	values := make([][]byte, len(idx))
	for i, j := range idx {
		values[i] = c.values[j]
	}
	c.values = values
}

func (c *bytesColumn) windowEqual(lo int, other FieldData, olo, n int) bool {
	o, ok := other.(*bytesColumn)
	if !ok {
		return false
	}
	for i := 0; i < n; i++ {
		if !bytes.Equal(c.values[lo+i], o.values[olo+i]) {
			return false
		}
	}
	return true
}

func (c *bytesColumn) matchEquality(op query.EqualityOp, value query.Literal) *bitmap.Bitmap {
	v, ok := value.AsBytes()
	if !ok {
		panic(fmt.Sprintf("cellgo: %s literal compared against bytes column", value.Kind()))
	}
	sel := bitmap.New(len(c.values))
	for i, cell := range c.values {
		if opMatches(op, bytes.Compare(cell, v)) {
			sel.Add(i)
		}
	}
	return sel
}

func (c *bytesColumn) matchMembership(op query.SetMembershipOp, members query.Members) *bitmap.Bitmap {
	keys := make(map[string]struct{}, members.Len())
	for _, m := range members.Values() {
		v, ok := m.AsBytes()
		if !ok {
			panic(fmt.Sprintf("cellgo: %s member tested against bytes column", m.Kind()))
		}
		keys[string(v)] = struct{}{}
	}
	sel := bitmap.New(len(c.values))
	for i, cell := range c.values {
		_, member := keys[string(cell)]
		if member == (op == query.In) {
			sel.Add(i)
		}
	}
	return sel
}

func (c *bytesColumn) indexValues() ([]int, bool) { return nil, false }

func (c *bytesColumn) variantIndex(value query.Literal) (int, bool) {
	v, ok := value.AsBytes()
	if !ok {
		panic(fmt.Sprintf("cellgo: %s literal scanned against bytes variants", value.Kind()))
	}
	for i, cell := range c.values {
		if bytes.Equal(cell, v) {
			return i, true
		}
	}
	return 0, false
}

func (c *bytesColumn) gather(idx []int) (FieldData, *bitmap.Bitmap) {
	values := make([][]byte, len(idx))
	valid := bitmap.New(len(idx))
	for i, j := range idx {
		if j >= 0 && j < len(c.values) {
			values[i] = slices.Clone(c.values[j])
			valid.Add(i)
		}
	}
	return &bytesColumn{values: values}, valid
}

func (c *bytesColumn) copyFrom(other FieldData) {
	o, ok := other.(*bytesColumn)
	if !ok {
		panic(fmt.Sprintf("cellgo: cannot copy %s column into bytes", other.Kind()))
	}
	if len(c.values) <= len(o.values) {
		c.values = cloneBytes(o.values)
	} else {
		copy(c.values, cloneBytes(o.values))
	}
}

func opMatches(op query.EqualityOp, cmp int) bool {
	switch op {
	case query.Lt:
		return cmp < 0
	case query.Le:
		return cmp <= 0
	case query.Eq:
		return cmp == 0
	case query.Ne:
		return cmp != 0
	case query.Ge:
		return cmp >= 0
	case query.Gt:
		return cmp > 0
	default:
		panic(fmt.Sprintf("cellgo: unhandled equality operator %d", op))
	}
}
