package isotonic_test

import (
	"math"
	"testing"

	"github.com/Pham-Hoang-Thach/convexfit/isotonic"
)

// benchmarkFit runs Fit on n observations with a sawtooth value pattern
// (every other pair violates the ordering, so the program never degenerates
// to a trivially feasible one). Setup time is excluded.
func benchmarkFit(b *testing.B, n int, opts isotonic.Options) {
	keys := make([]float64, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		keys[i] = float64(i)
		values[i] = float64(i) + 3*math.Sin(float64(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := isotonic.Fit(keys, values, &opts); err != nil {
			b.Fatalf("Fit failed: %v", err)
		}
	}
}

func BenchmarkFit_16(b *testing.B)  { benchmarkFit(b, 16, isotonic.DefaultOptions()) }
func BenchmarkFit_64(b *testing.B)  { benchmarkFit(b, 64, isotonic.DefaultOptions()) }
func BenchmarkFit_256(b *testing.B) { benchmarkFit(b, 256, isotonic.DefaultOptions()) }

func BenchmarkFit_64_Tertiary(b *testing.B) {
	opts := isotonic.DefaultOptions()
	opts.TieMode = isotonic.TieTertiary
	benchmarkFit(b, 64, opts)
}
