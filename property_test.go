package cellgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cellgo"
	"github.com/hupe1980/cellgo/physical"
	"github.com/hupe1980/cellgo/testutil"
)

// fieldCounts tallies every cell of every field by its rendered literal.
// Rendering collapses nothing a permutation check cares about.
func fieldCounts(t *testing.T, c *cellgo.Cells) map[string]map[string]int {
	t.Helper()

	counts := map[string]map[string]int{}
	for _, name := range c.Fields() {
		data, ok := c.Field(name)
		require.True(t, ok)

		m := map[string]int{}
		for i := 0; i < c.Len(); i++ {
			m[testutil.RowLiteral(data, i).String()]++
		}
		counts[name] = m
	}
	return counts
}

func TestSortedIsSortedProperty(t *testing.T) {
	names := []string{"a", "b", "c"}
	keys := []string{"a", "b"}

	for seed := int64(0); seed < 10; seed++ {
		rng := testutil.NewRNG(seed)
		cells := testutil.GenCells(rng, names, 64)
		before := fieldCounts(t, cells)

		sorted := cells.Sorted(keys)

		require.True(t, sorted.IsSorted(keys), "seed %d", seed)
		require.Equal(t, cells.Len(), sorted.Len(), "seed %d", seed)
		require.Equal(t, before, fieldCounts(t, sorted), "seed %d: sort must permute, not rewrite", seed)
	}
}

func TestDedupLawsProperty(t *testing.T) {
	names := []string{"a", "b"}
	keys := []string{"a"}

	for seed := int64(0); seed < 10; seed++ {
		rng := testutil.NewRNG(seed)
		cells := testutil.GenCells(rng, names, 48, testutil.WithDuplicateBias(0.6))

		deduped := cells.Dedup(keys)

		require.Equal(t, cells.CountDistinct(keys), deduped.Len(), "seed %d", seed)
		require.Equal(t, deduped.Len(), deduped.CountDistinct(keys), "seed %d", seed)
		require.True(t, deduped.Dedup(keys).Equal(deduped), "seed %d: dedup must be idempotent", seed)
	}
}

func TestIdentifyGroupsPartitionProperty(t *testing.T) {
	names := []string{"a", "b"}
	keys := []string{"a", "b"}

	for seed := int64(0); seed < 10; seed++ {
		rng := testutil.NewRNG(seed)
		cells := testutil.GenCells(rng, names, 48, testutil.WithDuplicateBias(0.6))
		sorted := cells.Sorted(keys)

		groups := sorted.IdentifyGroups(keys)

		require.NotEmpty(t, groups, "seed %d", seed)
		require.Equal(t, 0, groups[0], "seed %d", seed)
		require.Equal(t, sorted.Len(), groups[len(groups)-1], "seed %d", seed)
		for i := 1; i < len(groups); i++ {
			require.Greater(t, groups[i], groups[i-1], "seed %d", seed)
		}
		require.Equal(t, cells.CountDistinct(keys), len(groups)-1, "seed %d", seed)
	}
}

func TestQueryConditionMatchesOracle(t *testing.T) {
	names := []string{"a", "b", "c"}

	for seed := int64(0); seed < 40; seed++ {
		rng := testutil.NewRNG(seed)
		cells := testutil.GenCells(rng, names, 40, testutil.WithDuplicateBias(0.5))
		cond := testutil.GenCondition(rng, cells, 3)

		got := cells.QueryConditionBitmap(cond).ToArray()
		want := testutil.MatchRows(cells, cond)

		require.Equal(t, want, got, "seed %d: %s", seed, cond)
	}
}

func TestQueryConditionEnumeratedMatchesOracle(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		rng := testutil.NewRNG(seed)
		indices, variants := testutil.GenEnumerated(rng, 32, 6, 0.2)
		cells := cellgo.NewCells(map[string]cellgo.FieldData{
			"color": indices,
			"x":     testutil.GenFieldData(rng, physical.KindInt32, 32),
		}).WithEnumerations(map[string]cellgo.FieldData{
			"color": variants,
		})
		cond := testutil.GenCondition(rng, cells, 2)

		got := cells.QueryConditionBitmap(cond).ToArray()
		want := testutil.MatchRows(cells, cond)

		require.Equal(t, want, got, "seed %d: %s", seed, cond)
	}
}

func TestNegationMatchesComplement(t *testing.T) {
	names := []string{"a", "b"}

	for seed := int64(0); seed < 20; seed++ {
		rng := testutil.NewRNG(seed)
		cells := testutil.GenCells(rng, names, 24)
		cond := testutil.GenCondition(rng, cells, 2)

		negated := cells.QueryConditionBitmap(cond.Not())
		complement := cells.QueryConditionBitmap(cond)
		complement.Negate()

		assert.Equal(t, complement.String(), negated.String(), "seed %d: %s", seed, cond)
	}
}

func TestFilterMatchesSelection(t *testing.T) {
	rng := testutil.NewRNG(11)
	cells := testutil.GenCells(rng, []string{"a", "b"}, 32)
	cond := testutil.GenCondition(rng, cells, 2)

	sel := cells.QueryConditionBitmap(cond)
	filtered := cells.Filter(sel)

	require.Equal(t, sel.Cardinality(), filtered.Len())

	rows := sel.ToArray()
	for _, name := range filtered.Fields() {
		want, ok := cells.Field(name)
		require.True(t, ok)
		got, ok := filtered.Field(name)
		require.True(t, ok)

		for out, in := range rows {
			assert.Equal(t,
				testutil.RowLiteral(want, in).String(),
				testutil.RowLiteral(got, out).String(),
				"field %q row %d", name, in)
		}
	}
}
