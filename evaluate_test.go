package cellgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cellgo/query"
)

func evalCells() *Cells {
	return NewCells(map[string]FieldData{
		"a": Uint8s([]uint8{1, 2, 2, 3}),
		"b": Uint64s([]uint64{10, 20, 30, 40}),
	})
}

func TestQueryConditionBitmapEquality(t *testing.T) {
	cells := evalCells()

	tests := []struct {
		cond *query.Condition
		want string
	}{
		{query.Field("a").Lt(query.Uint8(2)), "1000"},
		{query.Field("a").Le(query.Uint8(2)), "1110"},
		{query.Field("a").Eq(query.Uint8(2)), "0110"},
		{query.Field("a").Ne(query.Uint8(2)), "1001"},
		{query.Field("a").Ge(query.Uint8(2)), "0111"},
		{query.Field("a").Gt(query.Uint8(2)), "0001"},
	}

	for _, tt := range tests {
		t.Run(tt.cond.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, cells.QueryConditionBitmap(tt.cond).String())
		})
	}
}

func TestQueryConditionBitmapCombination(t *testing.T) {
	cells := evalCells()

	and := query.Field("a").Eq(query.Uint8(2)).And(query.Field("b").Gt(query.Uint64(25)))
	assert.Equal(t, "0010", cells.QueryConditionBitmap(and).String())

	or := query.Field("a").Eq(query.Uint8(2)).Or(query.Field("b").Gt(query.Uint64(25)))
	assert.Equal(t, "0111", cells.QueryConditionBitmap(or).String())
}

func TestQueryConditionBitmapNullness(t *testing.T) {
	cells := evalCells()

	assert.Equal(t, "0000", cells.QueryConditionBitmap(query.Field("a").IsNull()).String())
	assert.Equal(t, "1111", cells.QueryConditionBitmap(query.Field("a").NotNull()).String())
}

func TestQueryConditionBitmapNegation(t *testing.T) {
	cells := evalCells()

	eq := query.Field("a").Eq(query.Uint8(2))
	assert.Equal(t, "1001", cells.QueryConditionBitmap(eq.Not()).String())
	assert.Equal(t, "0110", cells.QueryConditionBitmap(eq.Not().Not()).String())

	// A negated tree selects exactly the complement of the original.
	cond := eq.And(query.Field("b").Gt(query.Uint64(25)))
	complement := cells.QueryConditionBitmap(cond)
	complement.Negate()
	assert.Equal(t, complement.String(), cells.QueryConditionBitmap(cond.Not()).String())
}

func TestQueryConditionBitmapMembership(t *testing.T) {
	cells := NewCells(map[string]FieldData{
		"a": Int32s([]int32{1, 2, 3, 2}),
	})

	in := query.Field("a").In(query.Int32(2), query.Int32(9))
	assert.Equal(t, "0101", cells.QueryConditionBitmap(in).String())

	notIn := query.Field("a").NotIn(query.Int32(2), query.Int32(9))
	assert.Equal(t, "1010", cells.QueryConditionBitmap(notIn).String())
}

func TestQueryConditionBitmapEnumEquality(t *testing.T) {
	cells := NewCells(map[string]FieldData{
		"color": Uint8s([]uint8{0, 1, 2, 0, 5}),
	}).WithEnumerations(map[string]FieldData{
		"color": BytesValues([][]byte{[]byte("red"), []byte("green"), []byte("blue")}),
	})

	eq := query.Field("color").Eq(query.String("green"))
	assert.Equal(t, "01000", cells.QueryConditionBitmap(eq).String())

	// Ordering on an enumerated field follows the variant indices.
	lt := query.Field("color").Lt(query.String("green"))
	assert.Equal(t, "10010", cells.QueryConditionBitmap(lt).String())

	// The out-of-range index 5 differs from every variant index.
	ne := query.Field("color").Ne(query.String("green"))
	assert.Equal(t, "10111", cells.QueryConditionBitmap(ne).String())
}

func TestQueryConditionBitmapEnumEqualityUnknownVariant(t *testing.T) {
	cells := NewCells(map[string]FieldData{
		"color": Uint8s([]uint8{0, 1, 0}),
	}).WithEnumerations(map[string]FieldData{
		"color": BytesValues([][]byte{[]byte("red"), []byte("green")}),
	})

	eq := query.Field("color").Eq(query.String("purple"))
	assert.Equal(t, "000", cells.QueryConditionBitmap(eq).String())

	ne := query.Field("color").Ne(query.String("purple"))
	assert.Equal(t, "111", cells.QueryConditionBitmap(ne).String())
}

func TestQueryConditionBitmapEnumMembership(t *testing.T) {
	cells := NewCells(map[string]FieldData{
		"color": Uint8s([]uint8{0, 1, 5, 1}),
	}).WithEnumerations(map[string]FieldData{
		"color": BytesValues([][]byte{[]byte("red"), []byte("green")}),
	})

	in := query.Field("color").In(query.String("red"))
	assert.Equal(t, "1000", cells.QueryConditionBitmap(in).String())

	in = query.Field("color").In(query.String("red"), query.String("green"))
	// Row 2 holds index 5, which resolves to no variant, so no member list
	// can select it.
	assert.Equal(t, "1101", cells.QueryConditionBitmap(in).String())

	notIn := query.Field("color").NotIn(query.String("red"))
	assert.Equal(t, "0111", cells.QueryConditionBitmap(notIn).String())

	notIn = query.Field("color").NotIn(query.String("red"), query.String("green"))
	// The unresolvable row passes every NOT IN.
	assert.Equal(t, "0010", cells.QueryConditionBitmap(notIn).String())
}

func TestQueryConditionBitmapPanics(t *testing.T) {
	cells := evalCells()

	assert.Panics(t, func() {
		cells.QueryConditionBitmap(query.Field("missing").Eq(query.Uint8(1)))
	})
	assert.Panics(t, func() {
		cells.QueryConditionBitmap(query.Field("a").Eq(query.Int64(2)))
	})
	assert.Panics(t, func() {
		cells.QueryConditionBitmap(query.Field("a").In(query.Int64(2)))
	})
	assert.Panics(t, func() {
		cells.QueryConditionBitmap(&query.Condition{})
	})
}

func TestQueryCondition(t *testing.T) {
	cells := evalCells()

	got := cells.QueryCondition(query.Field("a").Eq(query.Uint8(2)))
	require.Equal(t, 2, got.Len())

	a, _ := Values[uint8](mustData(t, got, "a"))
	b, _ := Values[uint64](mustData(t, got, "b"))
	assert.Equal(t, []uint8{2, 2}, a)
	assert.Equal(t, []uint64{20, 30}, b)

	assert.Equal(t, 4, cells.Len(), "source must be untouched")
}

func TestQueryConditionDropsEnumerations(t *testing.T) {
	cells := NewCells(map[string]FieldData{
		"color": Uint8s([]uint8{0, 1, 0}),
	}).WithEnumerations(map[string]FieldData{
		"color": BytesValues([][]byte{[]byte("red"), []byte("green")}),
	})

	got := cells.QueryCondition(query.Field("color").Eq(query.String("red")))
	require.Equal(t, 2, got.Len())

	_, ok := got.Enumeration("color")
	assert.False(t, ok)
}
