package convex

import "fmt"

// Problem pairs a minimization objective with a conjunction of linear
// constraints. Problems are immutable once built; each Solve compiles and
// solves from scratch (nothing is cached across calls).
type Problem struct {
	obj  *Objective
	cons []Constraint
}

// Minimize builds the problem: minimize obj subject to every constraint.
func Minimize(obj *Objective, cons ...Constraint) *Problem {
	cs := make([]Constraint, len(cons))
	copy(cs, cons)
	return &Problem{obj: obj, cons: cs}
}

// Solution is an optimal assignment. Value retrieves the solved vector of a
// Variable referenced by the problem; unknown variables yield nil.
type Solution struct {
	// Status is always StatusOptimal on a non-nil Solution.
	Status Status

	// Objective is the minimized objective value, including constant parts.
	Objective float64

	values map[*Variable][]float64
}

// Value returns the solved assignment of v, positionally aligned with the
// variable's components. The returned slice is owned by the caller.
func (s *Solution) Value(v *Variable) []float64 {
	x, ok := s.values[v]
	if !ok {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)
	return out
}

// Solve compiles the problem to standard QP form and delegates to the given
// Solver (nil selects DefaultSolver). It is a pure, synchronous, blocking
// call; concurrent Solves of independent problems are safe.
//
// Failures map onto the package sentinels:
//   - construction/shape/finite-ness errors detected during compilation,
//   - ErrInfeasible / ErrUnbounded for classified solver outcomes,
//   - ErrSolverFailure wrapping the backend diagnostic for everything else.
func (p *Problem) Solve(s Solver) (*Solution, error) {
	if p == nil || p.obj == nil {
		return nil, ErrNilExpr
	}
	if p.obj.err != nil {
		return nil, p.obj.err
	}
	for _, c := range p.cons {
		if err := c.check(); err != nil {
			return nil, err
		}
	}

	vars := p.collectVariables()
	if len(vars) == 0 {
		return nil, ErrNoVariables
	}
	layout := make(map[*Variable]int, len(vars))
	ncols := 0
	for _, v := range vars {
		if v.n < 1 {
			return nil, ErrBadDimension
		}
		layout[v] = ncols
		ncols += v.n
	}

	data, constant, err := buildQP(p.obj, p.cons, layout, ncols)
	if err != nil {
		return nil, err
	}

	if s == nil {
		s = DefaultSolver()
	}
	res, err := s.SolveQP(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}
	switch res.Status {
	case StatusOptimal:
		// fall through below
	case StatusInfeasible:
		return nil, ErrInfeasible
	case StatusUnbounded:
		return nil, ErrUnbounded
	default:
		return nil, fmt.Errorf("%w: status %s", ErrSolverFailure, res.Status)
	}
	if len(res.X) != ncols {
		return nil, fmt.Errorf("%w: backend returned %d values for %d variables",
			ErrSolverFailure, len(res.X), ncols)
	}

	values := make(map[*Variable][]float64, len(vars))
	for _, v := range vars {
		base := layout[v]
		xs := make([]float64, v.n)
		copy(xs, res.X[base:base+v.n])
		values[v] = xs
	}
	return &Solution{
		Status:    StatusOptimal,
		Objective: res.Objective + constant,
		values:    values,
	}, nil
}

// collectVariables walks objective terms first, then constraints, recording
// each Variable at first appearance. The order fixes the column layout of
// the stacked decision vector, keeping compilation deterministic.
func (p *Problem) collectVariables() []*Variable {
	seen := make(map[*Variable]bool)
	var vars []*Variable
	for _, t := range p.obj.terms {
		vars = t.e.variables(vars, seen)
	}
	for _, c := range p.cons {
		vars = c.l.variables(vars, seen)
		vars = c.r.variables(vars, seen)
	}
	return vars
}
