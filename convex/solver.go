package convex

import "gonum.org/v1/gonum/mat"

// DefaultTolerance is the documented accuracy of solutions produced by the
// default backend. Interior-point methods do not reproduce exact arithmetic;
// compare solution values at this tolerance, never with ==.
const DefaultTolerance = 1e-6

// Status classifies the outcome of a solve.
type Status int

const (
	// StatusOptimal — the returned assignment minimizes the objective.
	StatusOptimal Status = iota

	// StatusInfeasible — the constraint set admits no solution.
	StatusInfeasible

	// StatusUnbounded — the objective decreases without bound.
	StatusUnbounded

	// StatusFailed — the backend could not classify the problem
	// (non-convergence or internal error).
	StatusFailed
)

// String implements fmt.Stringer for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "failed"
	}
}

// QPData is a quadratic program in standard form:
//
//	minimize   ½·xᵀPx + qᵀx
//	subject to G·x ≤ H
//	           A·x = B
//
// P is n×n positive semidefinite, q is length n. G/H are nil when the
// program has no inequality rows; A/B are nil when it has no equality rows.
type QPData struct {
	P *mat.SymDense
	Q *mat.VecDense
	G *mat.Dense
	H *mat.VecDense
	A *mat.Dense
	B *mat.VecDense
}

// NumVars reports n, the length of the decision vector.
func (d *QPData) NumVars() int { return d.Q.Len() }

// QPResult is a backend's answer to one QPData.
// X and Objective (the standard-form value ½xᵀPx + qᵀx) are meaningful only
// when Status is StatusOptimal.
type QPResult struct {
	Status    Status
	X         []float64
	Objective float64
}

// Solver is the external collaborator that performs the numeric solve.
// Implementations receive a fully formulated program and return the
// minimizing assignment or a failure status; they never see the expression
// tree. A non-nil error is reserved for backend-internal faults and is
// wrapped under ErrSolverFailure by Problem.Solve.
type Solver interface {
	SolveQP(data *QPData) (*QPResult, error)
}

// DefaultSolver returns the backend used when Solve is given a nil Solver:
// a ConeQP with library defaults.
func DefaultSolver() Solver { return &ConeQP{} }
