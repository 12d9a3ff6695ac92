package calibrate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Pham-Hoang-Thach/convexfit/convex"
)

// Calibrate returns weights w minimizing the chi-square distance
// Σ (wᵢ−dᵢ)²/dᵢ from the base weights, subject to Xᵀw = totals and the
// optional ratio bounds. The result is positionally aligned with
// Design.Weights. A nil opts selects DefaultOptions().
//
// Each call formulates and solves one fresh program; nothing is cached.
// Input sentinels are returned before any solve; unreachable totals under
// bounds yield a *TotalError when the interval pre-check can prove it, and
// convex.ErrInfeasible (wrapped) when only the solver can tell.
func Calibrate(d Design, totals []float64, opts *Options) ([]float64, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(d, totals, &o); err != nil {
		return nil, err
	}
	n, p := d.X.Dims()

	if o.Bounds != nil {
		if err := reachable(d, totals, o.Bounds); err != nil {
			return nil, err
		}
	}

	w := convex.NewVariable(n)

	// Objective Σ (wᵢ−dᵢ)²/dᵢ as a weighted sum of squares over w−d.
	invd := make([]float64, n)
	for i, di := range d.Weights {
		invd[i] = 1 / di
	}
	obj := convex.WeightedSumSquares(invd, w.Expr().Sub(convex.Const(d.Weights...)))

	// Benchmark constraints Xᵀw = totals, one equality row per auxiliary.
	xt := mat.NewDense(p, n, nil)
	xt.Copy(d.X.T())
	cons := []convex.Constraint{
		convex.Eq(convex.MatVec(xt, w.Expr()), convex.Const(totals...)),
	}

	if o.Bounds != nil {
		lo := make([]float64, n)
		hi := make([]float64, n)
		for i, di := range d.Weights {
			lo[i] = o.Bounds.Lower * di
			hi[i] = o.Bounds.Upper * di
		}
		cons = append(cons,
			convex.LessEq(convex.Const(lo...), w.Expr()),
			convex.LessEq(w.Expr(), convex.Const(hi...)),
		)
	}

	sol, err := convex.Minimize(obj, cons...).Solve(o.Solver)
	if err != nil {
		return nil, fmt.Errorf("calibrate: %w", err)
	}
	return sol.Value(w), nil
}

// validate rejects malformed input before any program is built.
func validate(d Design, totals []float64, o *Options) error {
	if d.X == nil {
		return ErrEmptyDesign
	}
	n, p := d.X.Dims()
	if n < 1 || p < 1 {
		return ErrEmptyDesign
	}
	if len(d.Weights) != n || len(totals) != p {
		return ErrDimensionMismatch
	}
	for _, di := range d.Weights {
		if math.IsNaN(di) || math.IsInf(di, 0) || di <= 0 {
			return ErrBadBaseWeight
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			if v := d.X.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNotFinite
			}
		}
	}
	for _, t := range totals {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ErrNotFinite
		}
	}
	if o.Bounds != nil {
		b := o.Bounds
		if math.IsNaN(b.Lower) || math.IsNaN(b.Upper) || math.IsInf(b.Lower, 0) || math.IsInf(b.Upper, 0) {
			return ErrBadBounds
		}
		if b.Lower < 0 || b.Lower >= b.Upper {
			return ErrBadBounds
		}
	}
	return nil
}

// reachable proves per-total infeasibility cheaply: with wᵢ confined to
// [L·dᵢ, U·dᵢ], each total Σᵢ wᵢ·xᵢⱼ ranges over a closed interval; a
// requested value outside it cannot be met by any weight vector, bounds
// coupling aside.
func reachable(d Design, totals []float64, b *Bounds) error {
	n, p := d.X.Dims()
	for j := 0; j < p; j++ {
		var lo, hi float64
		for i := 0; i < n; i++ {
			a := b.Lower * d.Weights[i] * d.X.At(i, j)
			c := b.Upper * d.Weights[i] * d.X.At(i, j)
			lo += math.Min(a, c)
			hi += math.Max(a, c)
		}
		if totals[j] < lo-convex.DefaultTolerance || totals[j] > hi+convex.DefaultTolerance {
			return &TotalError{Index: j, Want: totals[j], Lo: lo, Hi: hi}
		}
	}
	return nil
}
