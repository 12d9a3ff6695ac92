package calibrate_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/Pham-Hoang-Thach/convexfit/calibrate"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCalibrate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A sample of 4 households, each with design weight 1, must represent a
//	population of 8 households. The single auxiliary variable is the
//	constant 1, so the benchmark constraint is simply Σw = 8.
//
//	The chi-square distance spreads the adjustment evenly: every weight
//	doubles.
//
// Use case:
//
//	Post-stratification and GREG estimation in survey sampling.
func ExampleCalibrate() {
	design := calibrate.Design{
		X:       mat.NewDense(4, 1, []float64{1, 1, 1, 1}),
		Weights: []float64{1, 1, 1, 1},
	}

	w, err := calibrate.Calibrate(design, []float64{8}, nil)
	if err != nil {
		fmt.Println("calibration failed:", err)
		return
	}
	fmt.Printf("w = [%.2f %.2f %.2f %.2f]\n", w[0], w[1], w[2], w[3])
	// Output:
	// w = [2.00 2.00 2.00 2.00]
}
