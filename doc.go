// Package cellgo provides an in-memory typed columnar cell engine for Go.
//
// Cellgo models tabular "cell" data as a mapping from field name to a typed
// column, all columns equally long, and implements the algorithms a query
// engine runs over such data: multi-key sorting, grouping, deduplication,
// N-dimensional slicing, and the evaluation of boolean query conditions into
// row-selection bitmaps. Float columns sort, group, and hash by a total
// order (NaN included, positive and negative zero equal), so every record is
// comparable to every other.
//
// # Quick Start
//
//	cells := cellgo.NewCells(map[string]cellgo.FieldData{
//	    "a": cellgo.Uint8s([]uint8{1, 2, 2, 3}),
//	    "b": cellgo.Uint64s([]uint64{10, 20, 30, 40}),
//	})
//
//	cells.Sort([]string{"a", "b"})
//	distinct := cells.CountDistinct([]string{"a"})
//
// # Query Conditions
//
// Conditions are built with the query package and evaluated into selections:
//
//	cond := query.Field("a").Eq(query.Uint8(2)).And(query.Field("b").Gt(query.Uint64(25)))
//	sel := cells.QueryConditionBitmap(cond)
//	passing := cells.Filter(sel)
//
// # Enumerations
//
// A field may store unsigned indices into a side table of variants, like a
// dictionary-encoded column:
//
//	cells := cellgo.NewCells(map[string]cellgo.FieldData{
//	    "color": cellgo.Uint8s([]uint8{0, 1, 5}),
//	}).WithEnumerations(map[string]cellgo.FieldData{
//	    "color": cellgo.BytesValues([][]byte{[]byte("red"), []byte("green")}),
//	})
//
// Equality and membership predicates on "color" resolve through the table;
// the stored index 5 addresses no variant, so that record never passes an In
// test and always passes a NotIn test.
//
// # Key Features
//
//   - Ten numeric physical types plus variable-length byte columns
//   - IEEE 754 totalOrder comparisons for floats, zeros unified
//   - Predicate trees with And/Or and negation by re-derivation
//   - Enumeration resolution with validity tracking
//   - Row-major hyperrectangle slicing via StructuredCells
//   - Windowed comparison via CellsView
package cellgo
