package testutil

import (
	"bytes"
	"fmt"

	"github.com/hupe1980/cellgo"
	"github.com/hupe1980/cellgo/physical"
	"github.com/hupe1980/cellgo/query"
)

// MatchRows evaluates cond one record at a time, with none of the engine's
// bitmap algebra, and returns the passing rows in ascending order. It is the
// slow reference for cross-checking Cells.QueryConditionBitmap.
func MatchRows(cells *cellgo.Cells, cond *query.Condition) []int {
	rows := []int{}
	for i := 0; i < cells.Len(); i++ {
		if MatchRow(cells, cond, i) {
			rows = append(rows, i)
		}
	}
	return rows
}

// MatchRow reports whether record row passes cond.
func MatchRow(cells *cellgo.Cells, cond *query.Condition, row int) bool {
	if p, ok := cond.Equality(); ok {
		data := mustField(cells, p.Field)
		if variants, ok := cells.Enumeration(p.Field); ok {
			k := -1
			for i := 0; i < variants.Len(); i++ {
				if literalEqual(RowLiteral(variants, i), p.Value) {
					k = i
					break
				}
			}
			if k < 0 {
				return p.Op == query.Ne
			}
			return matchCmp(p.Op, physical.Compare(indexAt(data, row), k))
		}
		return matchCmp(p.Op, literalCompare(RowLiteral(data, row), p.Value))
	}

	if p, ok := cond.SetMembership(); ok {
		data := mustField(cells, p.Field)
		value := RowLiteral(data, row)
		if variants, ok := cells.Enumeration(p.Field); ok {
			idx := indexAt(data, row)
			if idx < 0 || idx >= variants.Len() {
				return p.Op == query.NotIn
			}
			value = RowLiteral(variants, idx)
		}
		member := false
		for _, m := range p.Members.Values() {
			if literalEqual(value, m) {
				member = true
				break
			}
		}
		if p.Op == query.In {
			return member
		}
		return !member
	}

	if p, ok := cond.Nullness(); ok {
		return p.Op == query.NotNull
	}

	if comb, ok := cond.Combination(); ok {
		lhs := MatchRow(cells, comb.LHS, row)
		rhs := MatchRow(cells, comb.RHS, row)
		if comb.Op == query.And {
			return lhs && rhs
		}
		return lhs || rhs
	}

	if inner, ok := cond.Negation(); ok {
		// The engine evaluates the re-derived negation; complementing here
		// keeps the reference independent of that strategy.
		return !MatchRow(cells, inner, row)
	}

	panic("testutil: cannot evaluate an empty condition")
}

func mustField(cells *cellgo.Cells, name string) cellgo.FieldData {
	data, ok := cells.Field(name)
	if !ok {
		panic(fmt.Sprintf("testutil: unknown field %q", name))
	}
	return data
}

// RowLiteral returns the cell at row i as a query literal.
func RowLiteral(data cellgo.FieldData, i int) query.Literal {
	switch data.Kind() {
	case physical.KindUint8:
		v, _ := cellgo.Values[uint8](data)
		return query.Uint8(v[i])
	case physical.KindUint16:
		v, _ := cellgo.Values[uint16](data)
		return query.Uint16(v[i])
	case physical.KindUint32:
		v, _ := cellgo.Values[uint32](data)
		return query.Uint32(v[i])
	case physical.KindUint64:
		v, _ := cellgo.Values[uint64](data)
		return query.Uint64(v[i])
	case physical.KindInt8:
		v, _ := cellgo.Values[int8](data)
		return query.Int8(v[i])
	case physical.KindInt16:
		v, _ := cellgo.Values[int16](data)
		return query.Int16(v[i])
	case physical.KindInt32:
		v, _ := cellgo.Values[int32](data)
		return query.Int32(v[i])
	case physical.KindInt64:
		v, _ := cellgo.Values[int64](data)
		return query.Int64(v[i])
	case physical.KindFloat32:
		v, _ := cellgo.Values[float32](data)
		return query.Float32(v[i])
	case physical.KindFloat64:
		v, _ := cellgo.Values[float64](data)
		return query.Float64(v[i])
	case physical.KindBytes:
		v, _ := cellgo.Values[[]byte](data)
		return query.Bytes(v[i])
	default:
		panic(fmt.Sprintf("testutil: cannot read %s column", data.Kind()))
	}
}

// indexAt reads an enumeration index from an unsigned column.
func indexAt(data cellgo.FieldData, i int) int {
	switch data.Kind() {
	case physical.KindUint8:
		v, _ := cellgo.Values[uint8](data)
		return int(v[i])
	case physical.KindUint16:
		v, _ := cellgo.Values[uint16](data)
		return int(v[i])
	case physical.KindUint32:
		v, _ := cellgo.Values[uint32](data)
		return int(v[i])
	case physical.KindUint64:
		v, _ := cellgo.Values[uint64](data)
		return int(v[i])
	default:
		panic(fmt.Sprintf("testutil: %s column cannot hold enumeration indices", data.Kind()))
	}
}

// literalCompare orders two literals of the same kind with the physical
// kernel.
func literalCompare(a, b query.Literal) int {
	if a.Kind() != b.Kind() {
		panic(fmt.Sprintf("testutil: comparing %s literal with %s", a.Kind(), b.Kind()))
	}
	switch a.Kind() {
	case physical.KindUint8:
		av, _ := a.AsUint8()
		bv, _ := b.AsUint8()
		return physical.Compare(av, bv)
	case physical.KindUint16:
		av, _ := a.AsUint16()
		bv, _ := b.AsUint16()
		return physical.Compare(av, bv)
	case physical.KindUint32:
		av, _ := a.AsUint32()
		bv, _ := b.AsUint32()
		return physical.Compare(av, bv)
	case physical.KindUint64:
		av, _ := a.AsUint64()
		bv, _ := b.AsUint64()
		return physical.Compare(av, bv)
	case physical.KindInt8:
		av, _ := a.AsInt8()
		bv, _ := b.AsInt8()
		return physical.Compare(av, bv)
	case physical.KindInt16:
		av, _ := a.AsInt16()
		bv, _ := b.AsInt16()
		return physical.Compare(av, bv)
	case physical.KindInt32:
		av, _ := a.AsInt32()
		bv, _ := b.AsInt32()
		return physical.Compare(av, bv)
	case physical.KindInt64:
		av, _ := a.AsInt64()
		bv, _ := b.AsInt64()
		return physical.Compare(av, bv)
	case physical.KindFloat32:
		av, _ := a.AsFloat32()
		bv, _ := b.AsFloat32()
		return physical.CompareFloat32(av, bv)
	case physical.KindFloat64:
		av, _ := a.AsFloat64()
		bv, _ := b.AsFloat64()
		return physical.CompareFloat64(av, bv)
	case physical.KindBytes:
		av, _ := a.AsBytes()
		bv, _ := b.AsBytes()
		return bytes.Compare(av, bv)
	default:
		panic(fmt.Sprintf("testutil: cannot compare %s literals", a.Kind()))
	}
}

// literalEqual reports kernel equality of two literals. Literals of
// different kinds are never equal.
func literalEqual(a, b query.Literal) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case physical.KindFloat32:
		av, _ := a.AsFloat32()
		bv, _ := b.AsFloat32()
		return physical.EqualFloat32(av, bv)
	case physical.KindFloat64:
		av, _ := a.AsFloat64()
		bv, _ := b.AsFloat64()
		return physical.EqualFloat64(av, bv)
	case physical.KindBytes:
		av, _ := a.AsBytes()
		bv, _ := b.AsBytes()
		return bytes.Equal(av, bv)
	default:
		return literalCompare(a, b) == 0
	}
}

func matchCmp(op query.EqualityOp, cmp int) bool {
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
		panic(fmt.Sprintf("testutil: unhandled equality operator %d", op))
	}
}
