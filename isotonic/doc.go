// Package isotonic fits a sequence of observed values with a monotone
// sequence, minimizing the (optionally weighted) squared deviation. The fit
// is expressed as a convex quadratic program over the convex package and
// solved by a generic backend — the classic pooled-adjacent-violators and
// active-set algorithms are deliberately not reimplemented here.
//
// 🚀 What is isotonic regression?
//
//	Given observations (keyᵢ, valueᵢ), find fitted values xᵢ minimizing
//
//	  Σᵢ wᵢ·(valueᵢ − xᵢ)²
//
//	subject to xᵢ ≤ xⱼ whenever keyᵢ < keyⱼ (or ≥ for a non-increasing
//	fit). It shows up in dose-response modeling, calibration of ranking
//	scores, shape-constrained density estimation, and quality-control
//	charts.
//
// ✨ Tie handling — observations sharing an identical key form a tie group
// (groups ordered by key ascending), and three policies decide what happens
// inside a group:
//
//   - TiePrimary   (default) — ordering is enforced only between groups;
//     members of the same group are left unconstrained against each other.
//   - TieSecondary — members of a group are additionally forced equal, so
//     the fit is flat within every tie group.
//   - TieTertiary  — only the group means must be ordered; individual
//     members may be non-monotone even though the means are monotone.
//     That is an accepted, documented property of the policy, not a bug.
//
// ⚙️ Usage:
//
//	fit, err := isotonic.Fit(
//	    []float64{1, 2, 3},   // ordering keys (any order, ties allowed)
//	    []float64{3, 1, 2},   // observed values, positionally aligned
//	    nil,                  // nil → DefaultOptions()
//	)
//	if err != nil {
//	    // isotonic.ErrEmptyInput, isotonic.ErrLengthMismatch, ...
//	}
//	// fit ≈ [2, 2, 2]; fit[i] always corresponds to values[i]
//
// Guarantees:
//   - the output is positionally aligned with the input, never reordered
//   - the fit is monotone along ascending key order within 1e-6
//     (convex.DefaultTolerance); refitting a monotone sequence returns it
//     unchanged, and scaling values by c > 0 scales the fit by c
//   - pure function: no shared state, safe for concurrent use
//
// Complexity: building the program is O(n) rows for distinct keys; primary
// mode with heavy ties adds one row per cross-group pair. The solve itself
// is the backend's interior-point iteration over those rows.
package isotonic
