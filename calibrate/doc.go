// Package calibrate adjusts survey design weights so that weighted totals
// of auxiliary variables hit known population totals, while moving as
// little as possible — in the chi-square sense — from the original weights.
// The adjustment is expressed as a convex quadratic program over the convex
// package; no Newton–Raphson raking routine is reimplemented here.
//
// 🚀 What is calibration?
//
//	A sample of n units carries design weights d (each unit "stands for"
//	dᵢ population units) and auxiliary values X (n×p): age bands, region
//	flags, past totals — anything whose population totals T are known.
//	Calibration finds new weights w solving
//
//	  minimize   Σᵢ (wᵢ − dᵢ)²/dᵢ        (chi-square distance)
//	  subject to Xᵀw = T                  (benchmark constraints)
//	             L ≤ wᵢ/dᵢ ≤ U            (optional ratio bounds)
//
//	The linear-distance minimizer is the classic GREG (generalized
//	regression) calibration estimator.
//
// ⚙️ Usage:
//
//	design := calibrate.Design{
//	    X:       mat.NewDense(4, 1, []float64{1, 1, 1, 1}),
//	    Weights: []float64{1, 1, 1, 1},
//	}
//	w, err := calibrate.Calibrate(design, []float64{8}, nil)
//	// w ≈ [2, 2, 2, 2]: the sample must now stand for 8 population units
//
// Infeasibility: with ratio bounds the requested totals may be unreachable.
// A cheap interval pre-check catches the per-total case and returns a
// *TotalError naming the offending total and the reachable range; it
// unwraps to convex.ErrInfeasible, as do the cases only the solver can
// detect.
//
// Guarantees:
//   - output weights are positionally aligned with Design.Weights
//   - Xᵀw matches the requested totals within 1e-6 (convex.DefaultTolerance)
//   - pure function: nothing cached, safe for concurrent use
package calibrate
