package matrix_test

import (
	"testing"

	"github.com/katalvlaran/numlab/matrix"
)

// BenchmarkMul_Dense8 measures the fast path on small square operands.
func BenchmarkMul_Dense8(b *testing.B) {
	x := RandFilledDense(b, 8, 8, 1)
	y := RandFilledDense(b, 8, 8, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(x, y); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}

// BenchmarkMul_Fallback8 measures the interface path on the same operands.
func BenchmarkMul_Fallback8(b *testing.B) {
	x := RandFilledDense(b, 8, 8, 1)
	y := RandFilledDense(b, 8, 8, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(hide{x}, hide{y}); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}
