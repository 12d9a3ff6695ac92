package isotonic

import (
	"fmt"
	"math"

	"github.com/Pham-Hoang-Thach/convexfit/convex"
)

// Fit computes the monotone least-squares fit of values along keys.
//
// keys and values must be equal-length, non-empty and finite; they are read
// in input order and never reordered — fit[i] always corresponds to
// values[i], whatever the key order. A nil opts selects DefaultOptions().
//
// The fit minimizes Σ wᵢ(valueᵢ − xᵢ)² subject to the monotonicity induced
// by ascending keys under the selected TieMode and Direction. Each call
// formulates a fresh quadratic program and issues one blocking solve; no
// state is shared or cached across calls.
//
// Errors: the input sentinels (ErrEmptyInput, ErrLengthMismatch,
// ErrNotFinite, ErrBadWeights, ErrBadTieMode, ErrBadDirection) are returned
// before any solve is attempted. Solve failures surface the convex
// sentinels wrapped with package context — errors.Is(err,
// convex.ErrSolverFailure) and friends keep working.
func Fit(keys, values []float64, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(keys, values, &o); err != nil {
		return nil, err
	}
	n := len(values)

	x := convex.NewVariable(n)
	residual := x.Expr().Sub(convex.Const(values...))
	var obj *convex.Objective
	if o.Weights != nil {
		obj = convex.WeightedSumSquares(o.Weights, residual)
	} else {
		obj = convex.SumSquares(residual)
	}

	groups := tieGroups(keys)
	cons := orderConstraints(x, groups, o.TieMode, o.Direction)

	sol, err := convex.Minimize(obj, cons...).Solve(o.Solver)
	if err != nil {
		return nil, fmt.Errorf("isotonic: %w", err)
	}
	return sol.Value(x), nil
}

// validate rejects malformed input before any program is built.
func validate(keys, values []float64, o *Options) error {
	if len(keys) != len(values) {
		return ErrLengthMismatch
	}
	if len(values) == 0 {
		return ErrEmptyInput
	}
	for i := range keys {
		if !finite(keys[i]) || !finite(values[i]) {
			return ErrNotFinite
		}
	}
	if o.Weights != nil {
		if len(o.Weights) != len(values) {
			return ErrBadWeights
		}
		for _, w := range o.Weights {
			if !finite(w) || w <= 0 {
				return ErrBadWeights
			}
		}
	}
	if o.TieMode < TiePrimary || o.TieMode > TieTertiary {
		return ErrBadTieMode
	}
	if o.Direction < NonDecreasing || o.Direction > NonIncreasing {
		return ErrBadDirection
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
