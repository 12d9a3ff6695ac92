package calibrate

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Pham-Hoang-Thach/convexfit/convex"
)

// Sentinel errors returned by Calibrate before any solve is attempted.
// Solve-stage failures keep their convex sentinels underneath a
// "calibrate:" wrap.
var (
	// ErrEmptyDesign indicates a nil auxiliary matrix or one with no rows
	// or no columns.
	ErrEmptyDesign = errors.New("calibrate: design must have at least one unit and one auxiliary variable")

	// ErrDimensionMismatch indicates disagreeing sizes between the
	// auxiliary matrix, the base weights and the totals.
	ErrDimensionMismatch = errors.New("calibrate: design, weights and totals dimensions disagree")

	// ErrBadBaseWeight indicates a base weight that is not finite and
	// strictly positive (the chi-square distance divides by it).
	ErrBadBaseWeight = errors.New("calibrate: base weights must be finite and positive")

	// ErrBadBounds indicates ratio bounds with Lower < 0 or Lower ≥ Upper.
	ErrBadBounds = errors.New("calibrate: bounds must satisfy 0 ≤ Lower < Upper")

	// ErrNotFinite indicates a NaN or ±Inf among auxiliaries or totals.
	ErrNotFinite = errors.New("calibrate: NaN or Inf in input")
)

// Design couples the sample's auxiliary matrix with its base weights.
//
//	X       — n×p dense matrix; row i holds the auxiliary values of unit i.
//	Weights — base (design) weights d, length n, each finite and > 0.
type Design struct {
	X       *mat.Dense
	Weights []float64
}

// Bounds restricts the calibration ratio g = wᵢ/dᵢ to [Lower, Upper].
// Lower may be 0 (weights allowed to vanish); Upper must exceed Lower.
type Bounds struct {
	Lower float64
	Upper float64
}

// Options configures a calibration.
//
//	Bounds — optional ratio bounds; nil leaves the weights unbounded.
//	Solver — optional convex backend; nil selects convex.DefaultSolver().
type Options struct {
	Bounds *Bounds
	Solver convex.Solver
}

// DefaultOptions returns the documented defaults: no bounds, default solver.
func DefaultOptions() Options { return Options{} }

// TotalError reports a population total that no weight vector within the
// ratio bounds can reach: the requested value lies outside [Lo, Hi], the
// interval attainable by Xᵀw. It unwraps to convex.ErrInfeasible, so
// errors.Is(err, convex.ErrInfeasible) matches.
type TotalError struct {
	Index  int     // column of the offending total
	Want   float64 // requested total
	Lo, Hi float64 // attainable interval under the bounds
}

// Error implements the error interface.
func (e *TotalError) Error() string {
	return fmt.Sprintf("calibrate: total %d = %g unreachable within bounds (attainable [%g, %g])",
		e.Index, e.Want, e.Lo, e.Hi)
}

// Unwrap classifies the failure as infeasibility.
func (e *TotalError) Unwrap() error { return convex.ErrInfeasible }
