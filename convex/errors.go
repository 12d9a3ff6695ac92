package convex

import "errors"

// Sentinel errors returned by problem construction, compilation and solving.
// All are matched via errors.Is; callers must never compare message strings.
var (
	// ErrNilExpr indicates a nil *Expr was passed where an expression is required.
	ErrNilExpr = errors.New("convex: nil expression")

	// ErrBadDimension indicates a Variable was declared with a non-positive length.
	ErrBadDimension = errors.New("convex: variable length must be positive")

	// ErrShapeMismatch indicates two expressions of incompatible lengths were
	// combined (Add/Sub/Eq/LessEq allow equal lengths or scalar broadcast only),
	// or an Index/Pick referenced a position outside the expression.
	ErrShapeMismatch = errors.New("convex: expression shape mismatch")

	// ErrNotFinite indicates a NaN or ±Inf crept into constants, weights or
	// matrix coefficients. Rejected before any solve is attempted.
	ErrNotFinite = errors.New("convex: NaN or Inf encountered")

	// ErrBadWeight indicates a negative or length-mismatched weight vector in
	// WeightedSumSquares.
	ErrBadWeight = errors.New("convex: weights must be non-negative and match expression length")

	// ErrNoVariables indicates the problem references no decision variables,
	// so there is nothing to solve for.
	ErrNoVariables = errors.New("convex: problem references no variables")

	// ErrInfeasible indicates the constraint set admits no solution.
	ErrInfeasible = errors.New("convex: problem is infeasible")

	// ErrUnbounded indicates the objective decreases without bound over the
	// feasible set.
	ErrUnbounded = errors.New("convex: problem is unbounded")

	// ErrSolverFailure indicates the backend failed to converge or errored
	// internally. The backend diagnostic is wrapped verbatim; the solve is
	// never retried — a deterministic program that fails once fails again.
	ErrSolverFailure = errors.New("convex: solver failure")
)
