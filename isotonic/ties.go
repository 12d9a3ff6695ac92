package isotonic

import (
	"sort"

	"github.com/Pham-Hoang-Thach/convexfit/convex"
)

// tieGroup is the set of observation indices sharing one exact key value.
// Groups partition {0..n-1} and are ordered by key ascending; idx preserves
// input order within the group (the grouping is stable).
type tieGroup struct {
	key float64
	idx []int
}

// tieGroups partitions the observation indices by exact key equality.
// The input order of keys is never touched; only an index permutation is
// sorted.
func tieGroups(keys []float64) []tieGroup {
	perm := make([]int, len(keys))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool { return keys[perm[a]] < keys[perm[b]] })

	var groups []tieGroup
	for _, i := range perm {
		if len(groups) > 0 && keys[i] == groups[len(groups)-1].key {
			g := &groups[len(groups)-1]
			g.idx = append(g.idx, i)
			continue
		}
		groups = append(groups, tieGroup{key: keys[i], idx: []int{i}})
	}
	return groups
}

// orderConstraints builds the constraint set for the chosen tie mode over
// tie groups already ordered by key ascending. dir flips the sense of every
// ordering row; equality rows are direction-independent.
func orderConstraints(x *convex.Variable, groups []tieGroup, mode TieMode, dir Direction) []convex.Constraint {
	// le(a, b) means "a precedes b" in the requested direction.
	le := func(a, b *convex.Expr) convex.Constraint {
		if dir == NonIncreasing {
			return convex.LessEq(b, a)
		}
		return convex.LessEq(a, b)
	}

	var cons []convex.Constraint
	switch mode {
	case TiePrimary:
		// Every member of a group precedes every member of the next group;
		// transitivity through the middle group extends the order across
		// non-adjacent groups. Tie-free data degenerates to the classic
		// n−1 adjacent rows.
		for g := 0; g+1 < len(groups); g++ {
			for _, i := range groups[g].idx {
				for _, j := range groups[g+1].idx {
					cons = append(cons, le(x.Expr().Index(i), x.Expr().Index(j)))
				}
			}
		}

	case TieSecondary:
		// Chain equalities flatten each group; with all members equal, a
		// single cross row per boundary carries the full ordering.
		for _, g := range groups {
			for k := 0; k+1 < len(g.idx); k++ {
				cons = append(cons, convex.Eq(x.Expr().Index(g.idx[k]), x.Expr().Index(g.idx[k+1])))
			}
		}
		for g := 0; g+1 < len(groups); g++ {
			cons = append(cons, le(
				x.Expr().Index(groups[g].idx[0]),
				x.Expr().Index(groups[g+1].idx[0]),
			))
		}

	case TieTertiary:
		// Only group means are ordered; members float freely inside.
		for g := 0; g+1 < len(groups); g++ {
			cons = append(cons, le(
				x.Expr().Pick(groups[g].idx...).Mean(),
				x.Expr().Pick(groups[g+1].idx...).Mean(),
			))
		}
	}
	return cons
}
