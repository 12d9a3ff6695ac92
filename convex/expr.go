package convex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Variable is a vector of free real decision scalars. Variables are
// identity-based: two calls to NewVariable produce distinct variables even
// for equal lengths, and one Problem may reference several.
type Variable struct {
	n int
}

// NewVariable declares a vector variable of n real scalars.
// A non-positive n is a construction error surfaced at Solve as ErrBadDimension.
func NewVariable(n int) *Variable {
	return &Variable{n: n}
}

// Len reports the number of scalars in the variable.
func (v *Variable) Len() int { return v.n }

// Expr returns an expression referencing the whole variable vector.
func (v *Variable) Expr() *Expr {
	if v == nil {
		return &Expr{err: ErrNilExpr}
	}
	if v.n < 1 {
		return &Expr{err: ErrBadDimension}
	}
	return &Expr{kind: kindVar, dim: v.n, v: v}
}

// exprKind tags the node type of the affine expression tree.
type exprKind uint8

const (
	kindVar    exprKind = iota // reference to a whole Variable
	kindConst                  // constant vector
	kindAdd                    // elementwise sum of two operands
	kindSub                    // elementwise difference of two operands
	kindScale                  // scalar multiple of one operand
	kindIndex                  // single component of one operand
	kindPick                   // ordered subset of components of one operand
	kindSum                    // sum of all components of one operand
	kindMatVec                 // dense matrix times one operand
)

// Expr is an immutable affine expression: a tagged tree whose leaves are
// variable references and constants. All constructors validate shapes and
// record the first error encountered; the error is reported once, at Solve.
//
// A length-1 expression broadcasts against any length in Add, Sub, Eq and
// LessEq, mirroring scalar-vector arithmetic.
type Expr struct {
	kind exprKind
	dim  int
	v    *Variable  // kindVar
	c    []float64  // kindConst
	s    float64    // kindScale factor
	m    *mat.Dense // kindMatVec coefficient matrix
	idx  []int      // kindIndex (len 1) and kindPick
	args []*Expr
	err  error
}

// Const builds a constant vector expression from the given values.
// The slice is copied; NaN/Inf values surface ErrNotFinite at Solve.
func Const(vals ...float64) *Expr {
	if len(vals) == 0 {
		return &Expr{err: ErrShapeMismatch}
	}
	c := make([]float64, len(vals))
	copy(c, vals)
	for _, x := range c {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return &Expr{err: ErrNotFinite}
		}
	}
	return &Expr{kind: kindConst, dim: len(c), c: c}
}

// Scalar builds a length-1 constant that broadcasts in arithmetic and
// comparisons.
func Scalar(s float64) *Expr { return Const(s) }

// Len reports the vector length of the expression (0 for error nodes).
func (e *Expr) Len() int {
	if e == nil || e.err != nil {
		return 0
	}
	return e.dim
}

// firstErr propagates a construction error from operands, if any.
func firstErr(es ...*Expr) error {
	for _, e := range es {
		if e == nil {
			return ErrNilExpr
		}
		if e.err != nil {
			return e.err
		}
	}
	return nil
}

// broadcastDim resolves the result length of a binary elementwise operation:
// equal lengths, or one operand of length 1 stretched to the other.
func broadcastDim(a, b int) (int, bool) {
	switch {
	case a == b:
		return a, true
	case a == 1:
		return b, true
	case b == 1:
		return a, true
	}
	return 0, false
}

// Add returns e + o elementwise, with scalar broadcast.
func (e *Expr) Add(o *Expr) *Expr { return binary(kindAdd, e, o) }

// Sub returns e − o elementwise, with scalar broadcast.
func (e *Expr) Sub(o *Expr) *Expr { return binary(kindSub, e, o) }

func binary(kind exprKind, e, o *Expr) *Expr {
	if err := firstErr(e, o); err != nil {
		return &Expr{err: err}
	}
	dim, ok := broadcastDim(e.dim, o.dim)
	if !ok {
		return &Expr{err: ErrShapeMismatch}
	}
	return &Expr{kind: kind, dim: dim, args: []*Expr{e, o}}
}

// Scale returns s·e. NaN/Inf factors surface ErrNotFinite at Solve.
func (e *Expr) Scale(s float64) *Expr {
	if err := firstErr(e); err != nil {
		return &Expr{err: err}
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return &Expr{err: ErrNotFinite}
	}
	return &Expr{kind: kindScale, dim: e.dim, s: s, args: []*Expr{e}}
}

// Index returns the i-th component of e as a length-1 expression.
func (e *Expr) Index(i int) *Expr {
	if err := firstErr(e); err != nil {
		return &Expr{err: err}
	}
	if i < 0 || i >= e.dim {
		return &Expr{err: ErrShapeMismatch}
	}
	return &Expr{kind: kindIndex, dim: 1, idx: []int{i}, args: []*Expr{e}}
}

// Pick returns the ordered subset e[idx[0]], e[idx[1]], … as a new expression.
// Indices may repeat; each must lie inside e.
func (e *Expr) Pick(idx ...int) *Expr {
	if err := firstErr(e); err != nil {
		return &Expr{err: err}
	}
	if len(idx) == 0 {
		return &Expr{err: ErrShapeMismatch}
	}
	sel := make([]int, len(idx))
	copy(sel, idx)
	for _, i := range sel {
		if i < 0 || i >= e.dim {
			return &Expr{err: ErrShapeMismatch}
		}
	}
	return &Expr{kind: kindPick, dim: len(sel), idx: sel, args: []*Expr{e}}
}

// Sum returns the length-1 expression Σᵢ eᵢ.
func (e *Expr) Sum() *Expr {
	if err := firstErr(e); err != nil {
		return &Expr{err: err}
	}
	return &Expr{kind: kindSum, dim: 1, args: []*Expr{e}}
}

// Mean returns the length-1 expression (Σᵢ eᵢ)/len(e).
func (e *Expr) Mean() *Expr {
	if err := firstErr(e); err != nil {
		return &Expr{err: err}
	}
	return e.Sum().Scale(1 / float64(e.dim))
}

// MatVec returns the expression m·e for a dense r×c matrix m, where c must
// equal the length of e. The matrix is not copied; callers must not mutate
// it after building the expression.
func MatVec(m *mat.Dense, e *Expr) *Expr {
	if err := firstErr(e); err != nil {
		return &Expr{err: err}
	}
	if m == nil {
		return &Expr{err: ErrNilExpr}
	}
	r, c := m.Dims()
	if c != e.dim || r < 1 {
		return &Expr{err: ErrShapeMismatch}
	}
	return &Expr{kind: kindMatVec, dim: r, m: m, args: []*Expr{e}}
}

// variables appends, in first-appearance order, every Variable referenced by
// the expression to dst, skipping those already present in seen.
func (e *Expr) variables(dst []*Variable, seen map[*Variable]bool) []*Variable {
	if e == nil || e.err != nil {
		return dst
	}
	if e.kind == kindVar && !seen[e.v] {
		seen[e.v] = true
		dst = append(dst, e.v)
	}
	for _, a := range e.args {
		dst = a.variables(dst, seen)
	}
	return dst
}
