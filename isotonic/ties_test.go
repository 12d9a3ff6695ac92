package isotonic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pham-Hoang-Thach/convexfit/convex"
)

// TestTieGroups_StableGrouping checks exact-equality grouping: groups come
// out ordered by key ascending and members keep input order.
func TestTieGroups_StableGrouping(t *testing.T) {
	keys := []float64{2, 1, 2, 1, 3}
	groups := tieGroups(keys)

	require.Len(t, groups, 3)
	assert.Equal(t, 1.0, groups[0].key)
	assert.Equal(t, []int{1, 3}, groups[0].idx, "members keep input order")
	assert.Equal(t, 2.0, groups[1].key)
	assert.Equal(t, []int{0, 2}, groups[1].idx)
	assert.Equal(t, 3.0, groups[2].key)
	assert.Equal(t, []int{4}, groups[2].idx)
}

// TestTieGroups_AllDistinct degenerates to singleton groups in key order.
func TestTieGroups_AllDistinct(t *testing.T) {
	groups := tieGroups([]float64{3, 1, 2})
	require.Len(t, groups, 3)
	for g := 0; g+1 < len(groups); g++ {
		assert.Less(t, groups[g].key, groups[g+1].key)
	}
	for _, g := range groups {
		assert.Len(t, g.idx, 1)
	}
}

// TestOrderConstraints_RowCounts pins the constraint-row economy per mode
// for groups of sizes 2,2: primary 2·2 pairwise rows, secondary 2 equality
// chains + 1 boundary row, tertiary a single mean row.
func TestOrderConstraints_RowCounts(t *testing.T) {
	keys := []float64{1, 1, 2, 2}
	groups := tieGroups(keys)
	x := convex.NewVariable(len(keys))

	for _, tc := range []struct {
		mode TieMode
		rows int
	}{
		{TiePrimary, 4},
		{TieSecondary, 3},
		{TieTertiary, 1},
	} {
		cons := orderConstraints(x, groups, tc.mode, NonDecreasing)
		assert.Len(t, cons, tc.rows, "mode %s", tc.mode)
	}
}
