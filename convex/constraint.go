package convex

// conKind distinguishes equality from inequality constraints.
type conKind uint8

const (
	conEq conKind = iota // l − r = 0
	conLe                // l − r ≤ 0
)

// Constraint couples two affine expressions elementwise. Lengths must agree
// or one side must be a length-1 scalar broadcast; violations surface as
// ErrShapeMismatch at Solve.
type Constraint struct {
	kind conKind
	l, r *Expr
}

// Eq constrains l = r elementwise.
func Eq(l, r *Expr) Constraint { return Constraint{kind: conEq, l: l, r: r} }

// LessEq constrains l ≤ r elementwise.
func LessEq(l, r *Expr) Constraint { return Constraint{kind: conLe, l: l, r: r} }

// check reports the first construction or shape error carried by the
// constraint, if any.
func (c Constraint) check() error {
	if err := firstErr(c.l, c.r); err != nil {
		return err
	}
	if _, ok := broadcastDim(c.l.dim, c.r.dim); !ok {
		return ErrShapeMismatch
	}
	return nil
}
