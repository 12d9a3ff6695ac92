// Package convex models small convex quadratic programs as explicit data —
// a tagged expression tree of affine forms, sum-of-squares objectives and
// linear equality/inequality constraints — compiles them to the standard QP
// form and delegates the numeric solve to a pluggable Solver backend.
//
// 🚀 What does it model?
//
//	minimize   Σₜ Σᵢ wₜᵢ·eₜᵢ(x)²        (each eₜ an affine expression)
//	subject to l(x) = r(x)              (elementwise, Eq)
//	           l(x) ≤ r(x)              (elementwise, LessEq)
//
// over one or more real vector Variables. Every expression is affine by
// construction: variable references, constants, Add/Sub/Scale, Index/Pick,
// Sum/Mean and matrix-vector products. Squaring happens only inside
// SumSquares / WeightedSumSquares — the grammar cannot express anything
// non-convex, so no DCP verification pass is needed.
//
// ✨ Key properties:
//   - expressions are immutable plain data, not operator overloading:
//     shapes are checked at construction, errors surface at Solve
//   - compilation is mechanical: each affine tree linearizes to a
//     coefficient matrix plus offset; the objective folds into ½xᵀPx + qᵀx
//   - solving is a one-method interface; the default backend (ConeQP)
//     delegates to the hrautila/cvx interior-point cone solver
//
// ⚙️ Usage:
//
//	x := convex.NewVariable(2)
//	obj := convex.SumSquares(x.Expr().Sub(convex.Const(3, 1)))
//	con := convex.LessEq(x.Expr().Index(0), x.Expr().Index(1))
//
//	sol, err := convex.Minimize(obj, con).Solve(nil) // nil → DefaultSolver
//	if err != nil {
//	    // convex.ErrInfeasible, convex.ErrUnbounded, convex.ErrSolverFailure, ...
//	}
//	fmt.Println(sol.Value(x)) // ≈ [2, 2]
//
// Accuracy: solutions from the default backend are good to
// DefaultTolerance (1e-6); compare results at that tolerance, never with ==.
//
// Errors follow the sentinel pattern: match with errors.Is, never by string.
package convex
