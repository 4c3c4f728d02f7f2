package testutil

import (
	"fmt"
	"math"

	"github.com/hupe1980/cellgo"
	"github.com/hupe1980/cellgo/physical"
	"github.com/hupe1980/cellgo/query"
)

// GenOptions control random cell generation.
type GenOptions struct {
	// Kinds to draw field types from.
	Kinds []physical.Kind
	// DuplicateBias is the probability that a cell repeats an earlier cell
	// of the same column. Sorting, grouping, and dedup tests need collisions
	// to mean anything.
	DuplicateBias float64
	// FloatSpecials is the probability that a float cell is drawn from the
	// troublesome values: NaN, negative zero, and the infinities.
	FloatSpecials float64
	// MaxBytesLen bounds the length of variable-length cells.
	MaxBytesLen int
}

// GenOption configures random cell generation.
type GenOption func(*GenOptions)

// WithKinds restricts generated columns to the given kinds.
func WithKinds(kinds ...physical.Kind) GenOption {
	return func(o *GenOptions) {
		o.Kinds = kinds
	}
}

// WithDuplicateBias sets the probability of repeating an earlier cell.
func WithDuplicateBias(p float64) GenOption {
	return func(o *GenOptions) {
		o.DuplicateBias = p
	}
}

// WithFloatSpecials sets the probability of drawing NaN, negative zero, or
// an infinity for float cells.
func WithFloatSpecials(p float64) GenOption {
	return func(o *GenOptions) {
		o.FloatSpecials = p
	}
}

// WithMaxBytesLen bounds the length of variable-length cells.
func WithMaxBytesLen(n int) GenOption {
	return func(o *GenOptions) {
		o.MaxBytesLen = n
	}
}

// AllKinds lists every physical kind a column can hold.
func AllKinds() []physical.Kind {
	return []physical.Kind{
		physical.KindUint8,
		physical.KindUint16,
		physical.KindUint32,
		physical.KindUint64,
		physical.KindInt8,
		physical.KindInt16,
		physical.KindInt32,
		physical.KindInt64,
		physical.KindFloat32,
		physical.KindFloat64,
		physical.KindBytes,
	}
}

func applyGenOptions(opts []GenOption) *GenOptions {
	o := &GenOptions{
		Kinds:         AllKinds(),
		DuplicateBias: 0.25,
		FloatSpecials: 0.05,
		MaxBytesLen:   8,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var float64Specials = []float64{
	math.NaN(),
	math.Copysign(0, -1),
	0,
	math.Inf(1),
	math.Inf(-1),
}

// genColumn draws n cells of type T, repeating earlier cells with the
// configured bias.
func genColumn[T any](rng *RNG, n int, o *GenOptions, draw func() T) []T {
	values := make([]T, n)
	for i := range values {
		if i > 0 && rng.Chance(o.DuplicateBias) {
			values[i] = values[rng.Intn(i)]
		} else {
			values[i] = draw()
		}
	}
	return values
}

// GenFieldData returns a random column of the given kind with n cells.
func GenFieldData(rng *RNG, kind physical.Kind, n int, opts ...GenOption) cellgo.FieldData {
	o := applyGenOptions(opts)
	switch kind {
	case physical.KindUint8:
		return cellgo.Uint8s(genColumn(rng, n, o, func() uint8 { return uint8(rng.Uint64()) }))
	case physical.KindUint16:
		return cellgo.Uint16s(genColumn(rng, n, o, func() uint16 { return uint16(rng.Uint64()) }))
	case physical.KindUint32:
		return cellgo.Uint32s(genColumn(rng, n, o, func() uint32 { return uint32(rng.Uint64()) }))
	case physical.KindUint64:
		return cellgo.Uint64s(genColumn(rng, n, o, func() uint64 { return rng.Uint64() }))
	case physical.KindInt8:
		return cellgo.Int8s(genColumn(rng, n, o, func() int8 { return int8(rng.Uint64()) }))
	case physical.KindInt16:
		return cellgo.Int16s(genColumn(rng, n, o, func() int16 { return int16(rng.Uint64()) }))
	case physical.KindInt32:
		return cellgo.Int32s(genColumn(rng, n, o, func() int32 { return int32(rng.Uint64()) }))
	case physical.KindInt64:
		return cellgo.Int64s(genColumn(rng, n, o, func() int64 { return int64(rng.Uint64()) }))
	case physical.KindFloat32:
		return cellgo.Float32s(genColumn(rng, n, o, func() float32 {
			return float32(drawFloat(rng, o))
		}))
	case physical.KindFloat64:
		return cellgo.Float64s(genColumn(rng, n, o, func() float64 {
			return drawFloat(rng, o)
		}))
	case physical.KindBytes:
		return cellgo.BytesValues(genColumn(rng, n, o, func() []byte {
			return rng.Bytes(o.MaxBytesLen)
		}))
	default:
		panic(fmt.Sprintf("testutil: cannot generate %s column", kind))
	}
}

func drawFloat(rng *RNG, o *GenOptions) float64 {
	if rng.Chance(o.FloatSpecials) {
		return float64Specials[rng.Intn(len(float64Specials))]
	}
	return rng.NormFloat64() * 100
}

// GenKind picks one of the configured kinds.
func GenKind(rng *RNG, opts ...GenOption) physical.Kind {
	o := applyGenOptions(opts)
	return o.Kinds[rng.Intn(len(o.Kinds))]
}

// GenCells returns random cells with the given field names, each a random
// kind, and n records.
func GenCells(rng *RNG, names []string, n int, opts ...GenOption) *cellgo.Cells {
	fields := make(map[string]cellgo.FieldData, len(names))
	for _, name := range names {
		fields[name] = GenFieldData(rng, GenKind(rng, opts...), n, opts...)
	}
	return cellgo.NewCells(fields)
}

// GenCondition builds a random condition over the fields of cells, nesting
// combinations up to the given depth. Literals are drawn from the cells' own
// values, variant tables included, so that predicates select meaningful
// subsets of rows.
func GenCondition(rng *RNG, cells *cellgo.Cells, depth int) *query.Condition {
	if depth > 0 && rng.Chance(0.7) {
		switch rng.Intn(3) {
		case 0:
			return GenCondition(rng, cells, depth-1).And(GenCondition(rng, cells, depth-1))
		case 1:
			return GenCondition(rng, cells, depth-1).Or(GenCondition(rng, cells, depth-1))
		default:
			return GenCondition(rng, cells, depth-1).Not()
		}
	}

	names := cells.Fields()
	name := names[rng.Intn(len(names))]
	field := query.Field(name)
	value := genLiteralFor(rng, cells, name)

	switch rng.Intn(8) {
	case 0:
		return field.Lt(value)
	case 1:
		return field.Le(value)
	case 2:
		return field.Eq(value)
	case 3:
		return field.Ne(value)
	case 4:
		return field.Ge(value)
	case 5:
		return field.Gt(value)
	case 6:
		members := []query.Literal{value}
		for rng.Chance(0.5) {
			members = append(members, genLiteralFor(rng, cells, name))
		}
		if rng.Bool() {
			return field.In(members...)
		}
		return field.NotIn(members...)
	default:
		if rng.Bool() {
			return field.NotNull()
		}
		return field.IsNull()
	}
}

// genLiteralFor draws a literal of the type the field compares against: a
// variant value for enumerated fields, a cell value otherwise.
func genLiteralFor(rng *RNG, cells *cellgo.Cells, name string) query.Literal {
	data := mustField(cells, name)
	if variants, ok := cells.Enumeration(name); ok {
		data = variants
	}
	if data.Len() == 0 {
		return zeroLiteral(data.Kind())
	}
	return RowLiteral(data, rng.Intn(data.Len()))
}

func zeroLiteral(kind physical.Kind) query.Literal {
	switch kind {
	case physical.KindUint8:
		return query.Uint8(0)
	case physical.KindUint16:
		return query.Uint16(0)
	case physical.KindUint32:
		return query.Uint32(0)
	case physical.KindUint64:
		return query.Uint64(0)
	case physical.KindInt8:
		return query.Int8(0)
	case physical.KindInt16:
		return query.Int16(0)
	case physical.KindInt32:
		return query.Int32(0)
	case physical.KindInt64:
		return query.Int64(0)
	case physical.KindFloat32:
		return query.Float32(0)
	case physical.KindFloat64:
		return query.Float64(0)
	case physical.KindBytes:
		return query.Bytes(nil)
	default:
		panic(fmt.Sprintf("testutil: no zero literal for %s", kind))
	}
}

// GenEnumerated returns an unsigned index column with n cells and a bytes
// variants table with the given number of distinct variants. Each index is
// out of the variants' range with probability invalidBias.
func GenEnumerated(rng *RNG, n, variants int, invalidBias float64) (cellgo.FieldData, cellgo.FieldData) {
	table := make([][]byte, variants)
	for i := range table {
		table[i] = fmt.Appendf(nil, "variant-%d", i)
	}
	idx := make([]uint8, n)
	for i := range idx {
		if rng.Chance(invalidBias) {
			idx[i] = uint8(variants + rng.Intn(256-variants))
		} else {
			idx[i] = uint8(rng.Intn(variants))
		}
	}
	return cellgo.Uint8s(idx), cellgo.BytesValues(table)
}
