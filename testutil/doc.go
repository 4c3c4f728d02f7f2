// Package testutil provides testing utilities for cellgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random columns, cells, and query
// conditions, and a slow row-at-a-time condition evaluator to serve as
// ground truth.
//
// # Random Cell Generation
//
//	rng := testutil.NewRNG(seed)
//	cells := testutil.GenCells(rng, []string{"a", "b"}, 100)
//	col := testutil.GenFieldData(rng, physical.KindFloat64, 100)
//
// # Condition Evaluation (Ground Truth)
//
//	cond := testutil.GenCondition(rng, cells, 2)
//	want := testutil.MatchRows(cells, cond)
package testutil
