package convex

import "math"

// Objective is a sum of (weighted) sum-of-squares terms, always minimized.
// The grammar admits nothing else: every objective this package can build is
// convex by construction.
type Objective struct {
	terms []quadTerm
	err   error
}

// quadTerm is one Σᵢ wᵢ·eᵢ² contribution; w == nil means all weights are 1.
type quadTerm struct {
	w []float64
	e *Expr
}

// SumSquares builds the objective term Σᵢ eᵢ².
func SumSquares(e *Expr) *Objective {
	if err := firstErr(e); err != nil {
		return &Objective{err: err}
	}
	return &Objective{terms: []quadTerm{{e: e}}}
}

// WeightedSumSquares builds the objective term Σᵢ wᵢ·eᵢ².
// len(w) must equal the length of e and every wᵢ must be finite and ≥ 0
// (zero weights are allowed and simply drop the component).
func WeightedSumSquares(w []float64, e *Expr) *Objective {
	if err := firstErr(e); err != nil {
		return &Objective{err: err}
	}
	if len(w) != e.dim {
		return &Objective{err: ErrBadWeight}
	}
	wc := make([]float64, len(w))
	copy(wc, w)
	for _, x := range wc {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &Objective{err: ErrNotFinite}
		}
		if x < 0 {
			return &Objective{err: ErrBadWeight}
		}
	}
	return &Objective{terms: []quadTerm{{w: wc, e: e}}}
}

// Plus returns the objective o + p (both term lists concatenated).
func (o *Objective) Plus(p *Objective) *Objective {
	if o == nil || p == nil {
		return &Objective{err: ErrNilExpr}
	}
	if o.err != nil {
		return &Objective{err: o.err}
	}
	if p.err != nil {
		return &Objective{err: p.err}
	}
	terms := make([]quadTerm, 0, len(o.terms)+len(p.terms))
	terms = append(terms, o.terms...)
	terms = append(terms, p.terms...)
	return &Objective{terms: terms}
}
