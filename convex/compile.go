package convex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// linform is the linearization of an affine expression over the stacked
// decision vector: rows(e) × ncols coefficient matrix plus an offset, so
// that e(x) = coef·x + off.
type linform struct {
	coef *mat.Dense
	off  []float64
}

// linearize walks the expression tree bottom-up and folds it into a single
// linear form. layout maps each Variable to its column block in the stacked
// decision vector of width ncols.
func linearize(e *Expr, layout map[*Variable]int, ncols int) (*linform, error) {
	if e == nil {
		return nil, ErrNilExpr
	}
	if e.err != nil {
		return nil, e.err
	}

	switch e.kind {
	case kindVar:
		base := layout[e.v]
		coef := mat.NewDense(e.dim, ncols, nil)
		for i := 0; i < e.dim; i++ {
			coef.Set(i, base+i, 1)
		}
		return &linform{coef: coef, off: make([]float64, e.dim)}, nil

	case kindConst:
		off := make([]float64, e.dim)
		copy(off, e.c)
		return &linform{coef: mat.NewDense(e.dim, ncols, nil), off: off}, nil

	case kindAdd, kindSub:
		l, err := linearize(e.args[0], layout, ncols)
		if err != nil {
			return nil, err
		}
		r, err := linearize(e.args[1], layout, ncols)
		if err != nil {
			return nil, err
		}
		l = stretch(l, e.dim, ncols)
		r = stretch(r, e.dim, ncols)
		out := &linform{coef: mat.NewDense(e.dim, ncols, nil), off: make([]float64, e.dim)}
		if e.kind == kindAdd {
			out.coef.Add(l.coef, r.coef)
			for i := range out.off {
				out.off[i] = l.off[i] + r.off[i]
			}
		} else {
			out.coef.Sub(l.coef, r.coef)
			for i := range out.off {
				out.off[i] = l.off[i] - r.off[i]
			}
		}
		return out, nil

	case kindScale:
		a, err := linearize(e.args[0], layout, ncols)
		if err != nil {
			return nil, err
		}
		out := &linform{coef: mat.NewDense(e.dim, ncols, nil), off: make([]float64, e.dim)}
		out.coef.Scale(e.s, a.coef)
		for i := range out.off {
			out.off[i] = e.s * a.off[i]
		}
		return out, nil

	case kindIndex, kindPick:
		a, err := linearize(e.args[0], layout, ncols)
		if err != nil {
			return nil, err
		}
		coef := mat.NewDense(e.dim, ncols, nil)
		off := make([]float64, e.dim)
		for r, i := range e.idx {
			coef.SetRow(r, a.coef.RawRowView(i))
			off[r] = a.off[i]
		}
		return &linform{coef: coef, off: off}, nil

	case kindSum:
		a, err := linearize(e.args[0], layout, ncols)
		if err != nil {
			return nil, err
		}
		rows, _ := a.coef.Dims()
		coef := mat.NewDense(1, ncols, nil)
		var off float64
		for i := 0; i < rows; i++ {
			row := a.coef.RawRowView(i)
			for j, c := range row {
				coef.Set(0, j, coef.At(0, j)+c)
			}
			off += a.off[i]
		}
		return &linform{coef: coef, off: []float64{off}}, nil

	case kindMatVec:
		a, err := linearize(e.args[0], layout, ncols)
		if err != nil {
			return nil, err
		}
		coef := mat.NewDense(e.dim, ncols, nil)
		coef.Mul(e.m, a.coef)
		offVec := mat.NewVecDense(len(a.off), a.off)
		out := mat.NewVecDense(e.dim, nil)
		out.MulVec(e.m, offVec)
		off := make([]float64, e.dim)
		copy(off, out.RawVector().Data)
		return &linform{coef: coef, off: off}, nil
	}
	return nil, ErrShapeMismatch
}

// stretch replicates a length-1 linear form to dim rows (scalar broadcast);
// forms already at dim rows pass through untouched.
func stretch(l *linform, dim, ncols int) *linform {
	rows, _ := l.coef.Dims()
	if rows == dim {
		return l
	}
	coef := mat.NewDense(dim, ncols, nil)
	off := make([]float64, dim)
	for i := 0; i < dim; i++ {
		coef.SetRow(i, l.coef.RawRowView(0))
		off[i] = l.off[0]
	}
	return &linform{coef: coef, off: off}
}

// buildQP compiles the objective and constraints into standard-form QP data.
// The returned constant is the objective part independent of x (Σ wᵢoᵢ² of
// each term), dropped from the standard form and added back when reporting
// the solved objective value.
func buildQP(obj *Objective, cons []Constraint, layout map[*Variable]int, ncols int) (*QPData, float64, error) {
	pd := make([]float64, ncols*ncols)
	qd := make([]float64, ncols)
	var constant float64

	for _, t := range obj.terms {
		lf, err := linearize(t.e, layout, ncols)
		if err != nil {
			return nil, 0, err
		}
		rows, _ := lf.coef.Dims()
		for i := 0; i < rows; i++ {
			w := 1.0
			if t.w != nil {
				w = t.w[i]
			}
			if w == 0 {
				continue
			}
			row := lf.coef.RawRowView(i)
			// ½xᵀPx + qᵀx form: w(aᵀx+o)² contributes P += 2w·aaᵀ, q += 2wo·a.
			for j1, c1 := range row {
				if c1 == 0 {
					continue
				}
				for j2, c2 := range row {
					pd[j1*ncols+j2] += 2 * w * c1 * c2
				}
				qd[j1] += 2 * w * lf.off[i] * c1
			}
			constant += w * lf.off[i] * lf.off[i]
		}
	}
	p := mat.NewSymDense(ncols, pd)
	q := mat.NewVecDense(ncols, qd)

	var gRows, aRows [][]float64
	var h, b []float64
	for _, c := range cons {
		diff := binary(kindSub, c.l, c.r)
		lf, err := linearize(diff, layout, ncols)
		if err != nil {
			return nil, 0, err
		}
		rows, _ := lf.coef.Dims()
		for i := 0; i < rows; i++ {
			row := make([]float64, ncols)
			copy(row, lf.coef.RawRowView(i))
			// coef·x + off {=,≤} 0  →  coef·x {=,≤} −off
			if c.kind == conEq {
				aRows = append(aRows, row)
				b = append(b, -lf.off[i])
			} else {
				gRows = append(gRows, row)
				h = append(h, -lf.off[i])
			}
		}
	}

	data := &QPData{P: p, Q: q}
	if len(gRows) > 0 {
		data.G = stack(gRows, ncols)
		data.H = mat.NewVecDense(len(h), h)
	}
	if len(aRows) > 0 {
		data.A = stack(aRows, ncols)
		data.B = mat.NewVecDense(len(b), b)
	}
	if err := checkFinite(data, constant); err != nil {
		return nil, 0, err
	}
	return data, constant, nil
}

// stack assembles collected constraint rows into one dense matrix.
func stack(rows [][]float64, ncols int) *mat.Dense {
	m := mat.NewDense(len(rows), ncols, nil)
	for i, r := range rows {
		m.SetRow(i, r)
	}
	return m
}

// checkFinite rejects compiled programs containing NaN/Inf anywhere.
// Constants and weights are validated at construction; this pass also covers
// coefficients introduced through MatVec matrices.
func checkFinite(d *QPData, constant float64) error {
	if math.IsNaN(constant) || math.IsInf(constant, 0) {
		return ErrNotFinite
	}
	var ms []mat.Matrix
	ms = append(ms, d.P, d.Q)
	if d.G != nil {
		ms = append(ms, d.G, d.H)
	}
	if d.A != nil {
		ms = append(ms, d.A, d.B)
	}
	for _, m := range ms {
		r, c := m.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v := m.At(i, j)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return ErrNotFinite
				}
			}
		}
	}
	return nil
}
