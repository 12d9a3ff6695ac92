package isotonic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pham-Hoang-Thach/convexfit/convex"
	"github.com/Pham-Hoang-Thach/convexfit/isotonic"
)

// testTol is the assertion tolerance for solver-produced values; the
// documented guarantee is convex.DefaultTolerance, assertions use a looser
// band to stay robust across backend versions.
const testTol = 1e-3

// orderTol is the monotonicity tolerance from the package contract.
const orderTol = 1e-6

// TestFit_EmptyInput pins the documented n=0 behavior: ErrEmptyInput, never
// a silent empty fit.
func TestFit_EmptyInput(t *testing.T) {
	_, err := isotonic.Fit([]float64{}, []float64{}, nil)
	assert.ErrorIs(t, err, isotonic.ErrEmptyInput)

	_, err = isotonic.Fit(nil, nil, nil)
	assert.ErrorIs(t, err, isotonic.ErrEmptyInput)
}

// TestFit_InvalidInput covers the remaining pre-solve sentinels.
func TestFit_InvalidInput(t *testing.T) {
	_, err := isotonic.Fit([]float64{1, 2}, []float64{1}, nil)
	assert.ErrorIs(t, err, isotonic.ErrLengthMismatch)

	_, err = isotonic.Fit([]float64{1, math.NaN()}, []float64{1, 2}, nil)
	assert.ErrorIs(t, err, isotonic.ErrNotFinite)

	_, err = isotonic.Fit([]float64{1, 2}, []float64{1, math.Inf(1)}, nil)
	assert.ErrorIs(t, err, isotonic.ErrNotFinite)

	opts := isotonic.DefaultOptions()
	opts.Weights = []float64{1}
	_, err = isotonic.Fit([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, isotonic.ErrBadWeights, "weight length must match")

	opts = isotonic.DefaultOptions()
	opts.Weights = []float64{1, 0}
	_, err = isotonic.Fit([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, isotonic.ErrBadWeights, "weights must be positive")

	opts = isotonic.DefaultOptions()
	opts.TieMode = isotonic.TieMode(99)
	_, err = isotonic.Fit([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, isotonic.ErrBadTieMode)

	opts = isotonic.DefaultOptions()
	opts.Direction = isotonic.Direction(-1)
	_, err = isotonic.Fit([]float64{1, 2}, []float64{1, 2}, &opts)
	assert.ErrorIs(t, err, isotonic.ErrBadDirection)
}

// TestFit_PoolsViolation is the canonical scenario: keys [1,2,3] with values
// [3,1,2] collapse to the pooled fit [2,2,2] under the non-decreasing
// constraint.
func TestFit_PoolsViolation(t *testing.T) {
	fit, err := isotonic.Fit([]float64{1, 2, 3}, []float64{3, 1, 2}, nil)
	require.NoError(t, err)
	require.Len(t, fit, 3)
	for i, want := range []float64{2, 2, 2} {
		assert.InDelta(t, want, fit[i], testTol, "component %d", i)
	}
}

// TestFit_MonotoneAlongKeys checks the core invariant on unsorted input:
// the fit is non-decreasing along ascending keys while the output stays
// positionally aligned with the input.
func TestFit_MonotoneAlongKeys(t *testing.T) {
	keys := []float64{3, 1, 2}
	values := []float64{5, 1, 3} // already monotone along keys: 1 ≤ 3 ≤ 5

	fit, err := isotonic.Fit(keys, values, nil)
	require.NoError(t, err)

	// Monotone input is a fixed point, in input positions.
	for i := range values {
		assert.InDelta(t, values[i], fit[i], testTol, "position %d must track its own value", i)
	}

	// And the ordering holds along keys, not along input order.
	assert.LessOrEqual(t, fit[1], fit[2]+orderTol)
	assert.LessOrEqual(t, fit[2], fit[0]+orderTol)
}

// TestFit_Idempotent re-fits a monotone sequence: the fit is a fixed point.
func TestFit_Idempotent(t *testing.T) {
	keys := []float64{1, 2, 3, 4, 5}
	values := []float64{8, 2, 5, 3, 9}

	first, err := isotonic.Fit(keys, values, nil)
	require.NoError(t, err)
	for i := 0; i+1 < len(first); i++ {
		assert.LessOrEqual(t, first[i], first[i+1]+orderTol, "fit must be non-decreasing")
	}

	second, err := isotonic.Fit(keys, first, nil)
	require.NoError(t, err)
	for i := range first {
		assert.InDelta(t, first[i], second[i], testTol, "refit must not move component %d", i)
	}
}

// TestFit_ScaleInvariant checks Fit(keys, c·values) = c·Fit(keys, values)
// for c > 0.
func TestFit_ScaleInvariant(t *testing.T) {
	keys := []float64{1, 2, 3, 4}
	values := []float64{4, 1, 3, 2}
	const c = 3.5

	base, err := isotonic.Fit(keys, values, nil)
	require.NoError(t, err)

	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = c * v
	}
	fit, err := isotonic.Fit(keys, scaled, nil)
	require.NoError(t, err)

	for i := range base {
		assert.InDelta(t, c*base[i], fit[i], testTol, "component %d", i)
	}
}

// TestFit_SecondaryTies: keys [1,1,2] with values [1,3,2] under secondary ties —
// the tied pair must come out equal and no larger than the third value.
func TestFit_SecondaryTies(t *testing.T) {
	opts := isotonic.DefaultOptions()
	opts.TieMode = isotonic.TieSecondary

	fit, err := isotonic.Fit([]float64{1, 1, 2}, []float64{1, 3, 2}, &opts)
	require.NoError(t, err)

	assert.InDelta(t, fit[0], fit[1], orderTol, "tied observations must be flat")
	assert.LessOrEqual(t, fit[0], fit[2]+orderTol)

	// The flat group settles at the group mean 2, leaving the third at 2.
	for i, want := range []float64{2, 2, 2} {
		assert.InDelta(t, want, fit[i], testTol, "component %d", i)
	}
}

// TestFit_PrimaryTiesMayDiffer verifies that primary mode leaves tied
// observations unconstrained against each other: with keys [1,1] the fit is
// just the values.
func TestFit_PrimaryTiesMayDiffer(t *testing.T) {
	fit, err := isotonic.Fit([]float64{1, 1}, []float64{1, 3}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, fit[0], testTol)
	assert.InDelta(t, 3.0, fit[1], testTol)
}

// TestFit_TertiaryBlockMeans: only block means must be ordered, so members
// of a group may remain non-monotone. With keys [1,1,2,2] and values
// [3,1,0,4] the unconstrained optimum already has equal block means (2, 2)
// and survives untouched — including fit[0] > fit[2].
func TestFit_TertiaryBlockMeans(t *testing.T) {
	opts := isotonic.DefaultOptions()
	opts.TieMode = isotonic.TieTertiary

	keys := []float64{1, 1, 2, 2}
	values := []float64{3, 1, 0, 4}
	fit, err := isotonic.Fit(keys, values, &opts)
	require.NoError(t, err)

	for i := range values {
		assert.InDelta(t, values[i], fit[i], testTol, "component %d", i)
	}

	mean1 := (fit[0] + fit[1]) / 2
	mean2 := (fit[2] + fit[3]) / 2
	assert.LessOrEqual(t, mean1, mean2+orderTol, "block means must be ordered")
	assert.Greater(t, fit[0], fit[2], "members may be non-monotone under tertiary ties")
}

// TestFit_NonIncreasing flips the direction: keys [1,2,3], values [1,3,2]
// pool to [2,2,2] under the non-increasing constraint.
func TestFit_NonIncreasing(t *testing.T) {
	opts := isotonic.DefaultOptions()
	opts.Direction = isotonic.NonIncreasing

	fit, err := isotonic.Fit([]float64{1, 2, 3}, []float64{1, 3, 2}, &opts)
	require.NoError(t, err)
	for i, want := range []float64{2, 2, 2} {
		assert.InDelta(t, want, fit[i], testTol, "component %d", i)
	}
	for i := 0; i+1 < len(fit); i++ {
		assert.GreaterOrEqual(t, fit[i]+orderTol, fit[i+1])
	}
}

// TestFit_Weighted pools keys [1,2], values [3,1] with weights [3,1] at the
// weighted mean 2.5.
func TestFit_Weighted(t *testing.T) {
	opts := isotonic.DefaultOptions()
	opts.Weights = []float64{3, 1}

	fit, err := isotonic.Fit([]float64{1, 2}, []float64{3, 1}, &opts)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, fit[0], testTol)
	assert.InDelta(t, 2.5, fit[1], testTol)
}

// TestFit_SingleObservation: one observation has nothing to order; the fit
// is the value itself.
func TestFit_SingleObservation(t *testing.T) {
	fit, err := isotonic.Fit([]float64{7}, []float64{-1.5}, nil)
	require.NoError(t, err)
	require.Len(t, fit, 1)
	assert.InDelta(t, -1.5, fit[0], testTol)
}

// TestFit_SolverErrorsWrapped routes a failing backend through Fit and
// checks the convex sentinel survives the package wrap.
func TestFit_SolverErrorsWrapped(t *testing.T) {
	opts := isotonic.DefaultOptions()
	opts.Solver = failingSolver{}

	_, err := isotonic.Fit([]float64{1, 2}, []float64{2, 1}, &opts)
	assert.ErrorIs(t, err, convex.ErrSolverFailure)
}

// failingSolver always reports an unclassified failure.
type failingSolver struct{}

func (failingSolver) SolveQP(*convex.QPData) (*convex.QPResult, error) {
	return &convex.QPResult{Status: convex.StatusFailed}, nil
}
