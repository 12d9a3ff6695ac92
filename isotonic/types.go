package isotonic

import (
	"errors"

	"github.com/Pham-Hoang-Thach/convexfit/convex"
)

// Sentinel errors returned by Fit. Match with errors.Is. Solve-stage
// failures keep their convex sentinels (convex.ErrInfeasible,
// convex.ErrSolverFailure, ...) underneath an "isotonic:" wrap.
var (
	// ErrEmptyInput indicates n = 0. An empty fit is never returned
	// silently; zero observations are a caller bug by definition.
	ErrEmptyInput = errors.New("isotonic: input sequences must be non-empty")

	// ErrLengthMismatch indicates len(keys) != len(values).
	ErrLengthMismatch = errors.New("isotonic: keys and values must have equal length")

	// ErrNotFinite indicates a NaN or ±Inf among keys or values.
	ErrNotFinite = errors.New("isotonic: NaN or Inf in input")

	// ErrBadWeights indicates Weights of the wrong length or with a
	// non-positive or non-finite entry.
	ErrBadWeights = errors.New("isotonic: weights must match input length and be positive")

	// ErrBadTieMode indicates a TieMode outside the declared enum.
	ErrBadTieMode = errors.New("isotonic: unknown tie mode")

	// ErrBadDirection indicates a Direction outside the declared enum.
	ErrBadDirection = errors.New("isotonic: unknown direction")
)

// TieMode selects the constraint policy applied within tie groups
// (observations sharing an identical key). Exactly one mode is active per
// fit.
type TieMode int

const (
	// TiePrimary enforces ordering only between tie groups; tied
	// observations may differ from each other.
	TiePrimary TieMode = iota

	// TieSecondary additionally forces all fitted values within a tie
	// group to be identical.
	TieSecondary

	// TieTertiary constrains only the per-group means of the fitted values
	// to be ordered; individual members are free.
	TieTertiary
)

// String implements fmt.Stringer for diagnostics.
func (m TieMode) String() string {
	switch m {
	case TiePrimary:
		return "primary"
	case TieSecondary:
		return "secondary"
	case TieTertiary:
		return "tertiary"
	default:
		return "unknown"
	}
}

// Direction selects the monotonicity sense of the fit.
type Direction int

const (
	// NonDecreasing requires the fit to rise (or stay flat) along
	// ascending key order.
	NonDecreasing Direction = iota

	// NonIncreasing requires the fit to fall (or stay flat) along
	// ascending key order.
	NonIncreasing
)

// String implements fmt.Stringer for diagnostics.
func (d Direction) String() string {
	switch d {
	case NonDecreasing:
		return "non-decreasing"
	case NonIncreasing:
		return "non-increasing"
	default:
		return "unknown"
	}
}

// Options configures a fit.
//
//	TieMode   — tie policy, see the TieMode constants (default TiePrimary).
//	Direction — monotonicity sense (default NonDecreasing).
//	Weights   — optional per-observation weights for the squared-error
//	            objective; nil means all 1. When set, length must equal the
//	            input length and every entry must be finite and > 0.
//	Solver    — optional convex backend; nil selects convex.DefaultSolver().
type Options struct {
	TieMode   TieMode
	Direction Direction
	Weights   []float64
	Solver    convex.Solver
}

// DefaultOptions returns the documented defaults: primary ties,
// non-decreasing fit, unit weights, default solver.
func DefaultOptions() Options {
	return Options{TieMode: TiePrimary, Direction: NonDecreasing}
}
