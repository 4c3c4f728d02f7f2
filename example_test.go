package cellgo_test

import (
	"fmt"

	"github.com/hupe1980/cellgo"
	"github.com/hupe1980/cellgo/query"
)

// Example_sort demonstrates multi-key sorting.
func Example_sort() {
	cells := cellgo.NewCells(map[string]cellgo.FieldData{
		"city": cellgo.BytesValues([][]byte{
			[]byte("berlin"), []byte("amsterdam"), []byte("berlin"), []byte("amsterdam"),
		}),
		"year": cellgo.Uint16s([]uint16{2021, 2024, 2019, 2020}),
	})

	cells.Sort([]string{"city", "year"})

	cities, _ := cellgo.Values[[]byte](mustField(cells, "city"))
	years, _ := cellgo.Values[uint16](mustField(cells, "year"))
	for i := range years {
		fmt.Printf("%s %d\n", cities[i], years[i])
	}
	// Output:
	// amsterdam 2020
	// amsterdam 2024
	// berlin 2019
	// berlin 2021
}

// Example_queryCondition demonstrates evaluating a condition tree into a
// row selection.
func Example_queryCondition() {
	cells := cellgo.NewCells(map[string]cellgo.FieldData{
		"a": cellgo.Uint8s([]uint8{1, 2, 2, 3}),
		"b": cellgo.Uint64s([]uint64{10, 20, 30, 40}),
	})

	cond := query.Field("a").Eq(query.Uint8(2)).And(query.Field("b").Gt(query.Uint64(25)))
	fmt.Println(cond)
	fmt.Println(cells.QueryConditionBitmap(cond))
	fmt.Println(cells.QueryCondition(cond).Len())
	// Output:
	// (a = 2 AND b > 25)
	// 0010
	// 1
}

// Example_enumerations demonstrates dictionary-encoded fields. The column
// stores indices into a variant table; row 3 holds an index with no variant
// and so never satisfies IN.
func Example_enumerations() {
	cells := cellgo.NewCells(map[string]cellgo.FieldData{
		"color": cellgo.Uint8s([]uint8{0, 1, 0, 5}),
	}).WithEnumerations(map[string]cellgo.FieldData{
		"color": cellgo.BytesValues([][]byte{[]byte("red"), []byte("green")}),
	})

	in := query.Field("color").In(query.String("red"), query.String("green"))
	fmt.Println(cells.QueryConditionBitmap(in))

	notIn := query.Field("color").NotIn(query.String("red"), query.String("green"))
	fmt.Println(cells.QueryConditionBitmap(notIn))
	// Output:
	// 1110
	// 0001
}

// Example_dedup demonstrates first-occurrence deduplication.
func Example_dedup() {
	cells := cellgo.NewCells(map[string]cellgo.FieldData{
		"a": cellgo.Uint8s([]uint8{2, 1, 2, 3, 1}),
	})

	deduped := cells.Dedup([]string{"a"})

	values, _ := cellgo.Values[uint8](mustField(deduped, "a"))
	fmt.Println(values)
	fmt.Println(cells.CountDistinct([]string{"a"}))
	// Output:
	// [2 1 3]
	// 3
}

// Example_structuredCells demonstrates slicing a row-major block.
func Example_structuredCells() {
	values := make([]uint8, 6)
	for i := range values {
		values[i] = uint8(i)
	}
	s := cellgo.NewStructuredCells([]int{2, 3}, cellgo.NewCells(map[string]cellgo.FieldData{
		"v": cellgo.Uint8s(values),
	}))

	sub := s.Slice([]cellgo.DimRange{{Start: 0, End: 2}, {Start: 1, End: 3}})

	got, _ := cellgo.Values[uint8](mustField(sub.IntoInner(), "v"))
	fmt.Println(got)
	// Output: [1 2 4 5]
}

// Example_view demonstrates windowed equality across two containers.
func Example_view() {
	left := cellgo.NewCells(map[string]cellgo.FieldData{
		"a": cellgo.Uint8s([]uint8{9, 1, 2, 3}),
	})
	right := cellgo.NewCells(map[string]cellgo.FieldData{
		"a": cellgo.Uint8s([]uint8{1, 2, 3, 9}),
	})

	fmt.Println(left.View([]string{"a"}, 1, 4).Equal(right.View([]string{"a"}, 0, 3)))
	// Output: true
}

func mustField(cells *cellgo.Cells, name string) cellgo.FieldData {
	data, ok := cells.Field(name)
	if !ok {
		panic(name)
	}
	return data
}
