// Package convexfit turns classic statistical estimation problems into
// convex quadratic programs and hands them to a generic convex solver —
// no specialised algorithm (PAVA, active-set, raking) is reimplemented here.
//
// 🚀 What is convexfit?
//
//	A small, pure-API library that brings together:
//		• convex/    — a tagged expression tree (variables, affine forms,
//		  sum-of-squares objectives, linear constraints), a QP compiler and
//		  a pluggable Solver interface with an interior-point backend
//		• isotonic/  — monotone (isotonic) least-squares fitting with three
//		  tie-handling policies and both fit directions
//		• calibrate/ — survey weight calibration: match known population
//		  totals while staying chi-square-close to the design weights
//
// ✨ Why choose convexfit?
//
//   - One formulation, any solver – components only build the program;
//     solving is delegated through a one-method Solver interface
//   - Explicit over magic – objectives and constraints are plain data,
//     not operator overloading
//   - Pure functions – no global state, no logging, errors are returned
//     and matched with errors.Is
//
// Quick taste (isotonic regression):
//
//	fit, err := isotonic.Fit(
//	    []float64{1, 2, 3},    // ordering keys
//	    []float64{3, 1, 2},    // observed values
//	    nil,                   // defaults: primary ties, non-decreasing
//	)
//	// fit ≈ [2, 2, 2]
//
// Dive into each package's doc.go for the math, the tie-handling rules and
// worked examples; runnable scenarios live under examples/.
//
//	go get github.com/Pham-Hoang-Thach/convexfit
package convexfit
