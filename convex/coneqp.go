package convex

import (
	"errors"

	"github.com/hrautila/cvx"
	"github.com/hrautila/linalg/blas"
	"github.com/hrautila/matrix"
	"gonum.org/v1/gonum/mat"
)

// ConeQP is the default Solver: it adapts standard-form QP data to the
// hrautila/cvx interior-point cone solver (the Go port of CVXOPT's coneqp).
//
// Zero-valued fields fall back to the library's own defaults, so ConeQP{}
// is ready to use.
type ConeQP struct {
	// MaxIter caps interior-point iterations (0 → library default).
	MaxIter int

	// AbsTol / RelTol override the convergence tolerances (0 → library
	// default, which is tighter than DefaultTolerance).
	AbsTol float64
	RelTol float64

	// ShowProgress makes the backend print per-iteration diagnostics to
	// stdout. Off by default; meant for debugging a misbehaving program.
	ShowProgress bool
}

var errNoResult = errors.New("backend returned no solution set")

// SolveQP converts the program to the backend's column-major matrices,
// invokes cvx.Qp and maps the outcome onto Status. The backend requires at
// least one inequality row to anchor its cone; programs without any get the
// vacuous, strictly feasible row 0·x ≤ 1.
func (s *ConeQP) SolveQP(data *QPData) (*QPResult, error) {
	n := data.NumVars()

	P := toFloat(data.P)
	q := matrix.FloatVector(rawVec(data.Q))

	var G, h *matrix.FloatMatrix
	if data.G != nil {
		G = toFloat(data.G)
		h = matrix.FloatVector(rawVec(data.H))
	} else {
		G = matrix.FloatZeros(1, n)
		h = matrix.FloatVector([]float64{1})
	}

	var A, b *matrix.FloatMatrix
	if data.A != nil {
		A = toFloat(data.A)
		b = matrix.FloatVector(rawVec(data.B))
	}

	var solopts cvx.SolverOptions
	solopts.MaxIter = s.MaxIter
	solopts.AbsTol = s.AbsTol
	solopts.RelTol = s.RelTol
	solopts.ShowProgress = s.ShowProgress

	sol, err := cvx.Qp(P, q, G, h, A, b, &solopts, nil)
	if err != nil {
		return nil, err
	}
	if sol == nil {
		return nil, errNoResult
	}

	switch sol.Status {
	case cvx.Optimal:
		xm := sol.Result.At("x")[0]
		x := xm.FloatArray()
		xs := make([]float64, n)
		copy(xs, x)
		obj := 0.5*blas.DotFloat(xm, P.Times(xm)) + blas.DotFloat(xm, q)
		return &QPResult{Status: StatusOptimal, X: xs, Objective: obj}, nil
	case cvx.PrimalInfeasible:
		return &QPResult{Status: StatusInfeasible}, nil
	case cvx.DualInfeasible:
		return &QPResult{Status: StatusUnbounded}, nil
	default:
		return &QPResult{Status: StatusFailed}, nil
	}
}

// toFloat copies a gonum matrix into the backend's FloatMatrix.
func toFloat(m mat.Matrix) *matrix.FloatMatrix {
	r, c := m.Dims()
	out := matrix.FloatZeros(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.SetAt(i, j, m.At(i, j))
		}
	}
	return out
}

// rawVec copies a gonum vector into a plain slice.
func rawVec(v *mat.VecDense) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
